package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/naka-gawa/github-profile-stats/internal/usecase"
)

const barWidth = 24

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	popularityColors = []string{"#0d5080", "#ff7f0e", "#36be36", "#d62728"}
	statusColors     = []string{"#1f77b4", "#1f77b4", "#2ca02c", "#2ca02c"}
	languageColors   = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}
	starsColors      = []string{"#1f77b4"}
)

// Charts lays the four chart panels out in a two by two grid.
func Charts(data usecase.ChartData) string {
	languageTotal := 0
	for _, b := range data.Languages {
		languageTotal += b.Value
	}

	popularity := panel("POPULARITY STATUS", data.Popularity, popularityColors, plainValue)
	status := panel("REPOSITORY STATUS", data.Status, statusColors, plainValue)
	languages := panel("LANGUAGES", upper(data.Languages), languageColors, func(b usecase.Bar) string {
		return fmt.Sprintf("%d (%s)", b.Value, share(b.Value, languageTotal))
	})
	stars := panel("STARS PER REPOSITORY", upper(data.TopStars), starsColors, plainValue)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, popularity, status),
		lipgloss.JoinHorizontal(lipgloss.Top, languages, stars),
	)
}

// PrintCharts writes Charts(data) to w.
func PrintCharts(w io.Writer, data usecase.ChartData) error {
	if _, err := fmt.Fprintln(w, Charts(data)); err != nil {
		return fmt.Errorf("failed to write charts: %w", err)
	}
	return nil
}

// panel renders one horizontal bar chart, scaling bars to the largest value.
func panel(title string, bars []usecase.Bar, colors []string, suffix func(usecase.Bar) string) string {
	labelWidth, peak := 0, 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		peak = max(peak, b.Value)
	}
	label := lipgloss.NewStyle().Width(labelWidth + 1)

	lines := []string{panelTitleStyle.Render(title)}
	for i, b := range bars {
		bar := progress.New(
			progress.WithSolidFill(colors[i%len(colors)]),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		pct := 0.0
		if peak > 0 {
			pct = float64(b.Value) / float64(peak)
		}
		lines = append(lines, label.Render(b.Label)+bar.ViewAs(pct)+" "+suffix(b))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func plainValue(b usecase.Bar) string {
	return strconv.Itoa(b.Value)
}

func upper(bars []usecase.Bar) []usecase.Bar {
	out := make([]usecase.Bar, len(bars))
	for i, b := range bars {
		out[i] = usecase.Bar{Label: strings.ToUpper(b.Label), Value: b.Value}
	}
	return out
}

func share(value, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return strconv.FormatFloat(float64(value)*100/float64(total), 'f', 2, 64) + "%"
}
