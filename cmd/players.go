package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aezurly/go-lol-metrics/internal/aggregator"
	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/report"
)

var (
	playersTop      int
	playersBy       string
	playersSearch   string
	playersPosition string
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Rank players across every loaded match",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().IntVar(&playersTop, "top", 0, "limit to the top N players (0 = all)")
	playersCmd.Flags().StringVar(&playersBy, "by", "damage", "ranking metric: damage or kda")
	playersCmd.Flags().StringVar(&playersSearch, "search", "", "only players whose name contains this term")
	playersCmd.Flags().StringVar(&playersPosition, "position", "", "only players whose main role matches (TOP, JGL, MID, ADC, SUP)")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	matches, skipped, err := loadCorpus()
	if err != nil {
		return err
	}
	session := aggregator.NewSession()
	session.AddCorpus(matches)

	var ranked []*aggregator.PlayerTotals
	switch playersBy {
	case "damage":
		ranked = session.TopByAverageDamage(0)
	case "kda":
		ranked = session.TopByAverageKDA(0)
	default:
		return fmt.Errorf("unknown ranking metric %q (want damage or kda)", playersBy)
	}

	if playersPosition != "" {
		pos := model.ParsePosition(playersPosition)
		if pos == model.PositionUnknown {
			return fmt.Errorf("unknown position %q", playersPosition)
		}
		ranked = filterPlayers(ranked, func(p *aggregator.PlayerTotals) bool {
			return p.MostPlayedPosition() == pos
		})
	}
	if playersSearch != "" {
		wanted := make(map[string]struct{})
		for _, name := range session.Search(playersSearch) {
			wanted[name] = struct{}{}
		}
		ranked = filterPlayers(ranked, func(p *aggregator.PlayerTotals) bool {
			_, ok := wanted[p.Name]
			return ok
		})
	}
	if playersTop > 0 && len(ranked) > playersTop {
		ranked = ranked[:playersTop]
	}
	if len(ranked) == 0 {
		fmt.Fprintln(os.Stdout, "No players matched.")
		return nil
	}

	names := make([]string, 0, len(ranked))
	for _, p := range ranked {
		names = append(names, p.Name)
	}
	report.PrintCorpusSummary(os.Stdout, session.MatchesAnalyzed(), skipped, len(session.AllPlayers()))
	report.PrintPlayerRankings(os.Stdout, session, names, "")
	return nil
}

func filterPlayers(in []*aggregator.PlayerTotals, keep func(*aggregator.PlayerTotals) bool) []*aggregator.PlayerTotals {
	var out []*aggregator.PlayerTotals
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
