package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aezurly/go-lol-metrics/internal/aggregator"
	"github.com/aezurly/go-lol-metrics/internal/report"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List every loaded match",
	Args:  cobra.NoArgs,
	RunE:  runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	matches, skipped, err := loadCorpus()
	if err != nil {
		return err
	}
	session := aggregator.NewSession()
	session.AddCorpus(matches)

	report.PrintCorpusSummary(os.Stdout, len(matches), skipped, len(session.AllPlayers()))
	report.PrintGamesTable(os.Stdout, matches)
	return nil
}
