// Package render turns a report and its chart data into terminal output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

const (
	reportTitle   = "GITHUB PROFILE ANALYSIS REPORT"
	minLabelWidth = 28
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0d5080"))
	labelStyle = lipgloss.NewStyle()
	valueStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type row struct {
	label string
	value string
}

// Report formats every field of the report together with the derived values.
func Report(report *domain.AggregateReport) string {
	rows := []row{
		{"USERNAME", report.Owner},
		{"TOTAL REPOSITORIES", strconv.Itoa(report.TotalRepos)},
		{"TOTAL WATCHERS", strconv.Itoa(report.TotalWatchers)},
		{"TOTAL STARS", strconv.Itoa(report.TotalStars)},
		{"TOTAL FORKS", strconv.Itoa(report.TotalForks)},
		{"TOTAL OPEN ISSUES", strconv.Itoa(report.TotalOpenIssues)},
		{"PUBLIC REPOSITORIES", strconv.Itoa(report.PublicRepos)},
		{"PRIVATE REPOSITORIES", strconv.Itoa(report.PrivateRepos)},
		{"ACTIVE REPOSITORIES", strconv.Itoa(report.ActiveRepos)},
		{"STALE REPOSITORIES", strconv.Itoa(report.StaleRepos)},
	}
	derived := []row{
		{"MAJORITY LANGUAGE", report.MajorityLanguage().Key},
		{"MOST POPULAR REPOSITORY", strings.ToUpper(report.MostPopularRepository().Key)},
	}
	if summary, err := report.StarSummary(); err == nil {
		derived = append(derived,
			row{"AVERAGE STARS", strconv.FormatFloat(summary.Mean, 'f', 2, 64)},
			row{"MEDIAN STARS", strconv.FormatFloat(summary.Median, 'f', 2, 64)},
			row{"MAX STARS", strconv.FormatFloat(summary.Max, 'f', 0, 64)},
		)
	}

	rule := ruleStyle.Render(strings.Repeat("-", 79))
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(titleStyle.Render(centered(reportTitle, 79)) + "\n")
	b.WriteString(rule + "\n")
	writeRows(&b, rows)
	b.WriteString("\n")
	writeRows(&b, derived)
	b.WriteString("\n" + titleStyle.Render("LANGUAGES") + "\n")
	writeRows(&b, entryRows(report.Languages()))
	b.WriteString("\n" + titleStyle.Render("STARS PER REPOSITORY") + "\n")
	writeRows(&b, entryRows(report.StarsPerRepo()))
	b.WriteString(rule + "\n")
	return b.String()
}

// PrintReport writes Report(report) to w.
func PrintReport(w io.Writer, report *domain.AggregateReport) error {
	if _, err := fmt.Fprint(w, Report(report)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeRows aligns the colons of rows; labels never wrap.
func writeRows(b *strings.Builder, rows []row) {
	width := minLabelWidth
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.label)+1)
	}
	label := labelStyle.Width(width)
	for _, r := range rows {
		b.WriteString(label.Render(r.label) + ": " + valueStyle.Render(r.value) + "\n")
	}
}

func entryRows(entries []domain.Entry) []row {
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{"  " + e.Key, strconv.Itoa(e.Value)})
	}
	return rows
}

func centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
