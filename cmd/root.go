// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "github-profile-stats",
	Short: "A CLI tool to summarise every repository of a GitHub account.",
	Long: `github-profile-stats asks for a GitHub username, fetches every repository
the account owns and prints a profile report (totals, activity, visibility,
languages and star rankings) followed by terminal charts.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStats,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
