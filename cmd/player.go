package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aezurly/go-lol-metrics/internal/aggregator"
	"github.com/aezurly/go-lol-metrics/internal/report"
)

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show one player's profile and position comparison",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	matches, _, err := loadCorpus()
	if err != nil {
		return err
	}
	session := aggregator.NewSession()
	session.AddCorpus(matches)

	p := session.FindPlayer(args[0])
	if p == nil {
		suggestions := session.Search(args[0])
		if len(suggestions) > 0 {
			return fmt.Errorf("player %q not found; close matches: %v", args[0], suggestions)
		}
		return fmt.Errorf("player %q not found in %d matches", args[0], session.MatchesAnalyzed())
	}

	report.PrintPlayerProfile(os.Stdout, p)

	// A comparison against a single-player position says nothing.
	if peers := session.PlayersAtPosition(p.MostPlayedPosition()); len(peers) >= 2 {
		report.PrintPositionComparison(os.Stdout, session, p)
	}
	return nil
}
