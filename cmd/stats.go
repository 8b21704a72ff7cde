package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-stats/internal/config"
	"github.com/naka-gawa/github-profile-stats/internal/gateway"
	"github.com/naka-gawa/github-profile-stats/internal/prompt"
	"github.com/naka-gawa/github-profile-stats/internal/render"
	"github.com/naka-gawa/github-profile-stats/internal/usecase"
)

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose, cmd.ErrOrStderr())

	account, err := prompt.Ask(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, prompt.ErrCancelled) {
		logger.Println("Prompt cancelled, nothing to do.")
		return nil
	}
	if err != nil {
		return err
	}

	// Inject dependencies and run the main business logic.
	cfg := config.Default()
	githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(githubGateway, cfg, logger)

	result := aggregator.Run(ctx, account)
	return present(cmd.OutOrStdout(), result)
}

// newLogger discards everything unless verbose is set.
func newLogger(verbose bool, w io.Writer) *log.Logger {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(w)
	}
	return logger
}

// present prints the outcome of a run. Remote failures are reported but never
// turned into an error: whatever was fetched is still shown.
func present(w io.Writer, result usecase.Result) error {
	render.PrintTermination(w, result.Termination)
	if !result.HasData() {
		render.PrintNoData(w)
		return nil
	}
	if err := render.PrintReport(w, result.Report); err != nil {
		return err
	}
	return render.PrintCharts(w, result.Charts)
}
