package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tubelens",
		Short: "Tubelens analyzes video metadata for keyword and SEO insights.",
		Long: `Tubelens extracts keywords from video titles, descriptions, and tags,
scores sentiment, buckets keywords into topical categories, and produces
optimization recommendations. Results persist per channel in a local
SQLite engagement store.

Run 'tubelens serve' to expose the analysis pipeline over HTTP, or
'tubelens analyze' to process a batch of video metadata offline.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tubelens.yaml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewEngagementCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
