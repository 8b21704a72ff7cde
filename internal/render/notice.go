package render

import (
	"io"

	"github.com/fatih/color"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

const NoDataMessage = "NO DATA RECEIVED!"

var (
	failureColor = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// PrintTermination tells the user why fetching stopped early. A complete fetch prints nothing.
func PrintTermination(w io.Writer, t domain.Termination) {
	if t.Complete() {
		return
	}
	failureColor.Fprintln(w, t.Message())
}

func PrintNoData(w io.Writer) {
	warningColor.Fprintln(w, NoDataMessage)
}
