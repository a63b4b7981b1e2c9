package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aezurly/go-lol-metrics/internal/loader"
	"github.com/aezurly/go-lol-metrics/internal/model"
)

var (
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lolmetrics",
	Short: "LoL match telemetry metrics tool",
	Long:  "Aggregate exported League of Legends match files and compute player/team performance metrics.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "directory of match JSON files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(gamesCmd)
}

// loadCorpus loads the match corpus from the --data directory.
func loadCorpus() ([]*model.MatchRecord, int, error) {
	matches, skipped, err := loader.LoadCorpus(dataDir)
	if err != nil {
		return nil, 0, fmt.Errorf("load corpus: %w", err)
	}
	return matches, skipped, nil
}
