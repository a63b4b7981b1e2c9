package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aezurly/go-lol-metrics/internal/names"
	"github.com/aezurly/go-lol-metrics/internal/normalize"
	"github.com/aezurly/go-lol-metrics/internal/report"
	"github.com/aezurly/go-lol-metrics/internal/teams"
)

var (
	teamTarget string
	teamPlayer string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Analyze the target player's team against their lane opponents",
	Long: `Identify every player who ever shared a team with the target, then compare
each roster member's per-position averages against the pooled opponents who
played the same position, on both the raw and a 0-100 normalized scale.`,
	Args: cobra.NoArgs,
	RunE: runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamTarget, "target", "Aezurly", "player whose team to analyze")
	teamCmd.Flags().StringVar(&teamPlayer, "player", "", "limit the comparison to one roster member")
}

func runTeam(cmd *cobra.Command, args []string) error {
	matches, _, err := loadCorpus()
	if err != nil {
		return err
	}

	classification := teams.NewClassification(matches, teamTarget)
	report.PrintTeamRoster(os.Stdout, classification)
	if len(classification.Teammates()) == 0 {
		return nil
	}

	only := ""
	if teamPlayer != "" {
		only = names.Normalize(teamPlayer)
	}
	printed := 0
	for _, pos := range classification.AllPositions() {
		for _, name := range classification.PlayersAtPosition(pos) {
			if only != "" && name != only {
				continue
			}
			if cmp := normalize.Compare(classification, name, pos); cmp != nil {
				report.PrintTeamComparison(os.Stdout, cmp)
				printed++
			}
		}
	}
	if only != "" && printed == 0 {
		return fmt.Errorf("player %q has no games on %s's team", teamPlayer, teamTarget)
	}
	return nil
}
