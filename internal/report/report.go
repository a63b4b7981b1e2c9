package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/aezurly/go-lol-metrics/internal/aggregator"
	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/normalize"
	"github.com/aezurly/go-lol-metrics/internal/teams"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintCorpusSummary prints a one-line summary header for a loaded corpus.
func PrintCorpusSummary(w io.Writer, matches, skipped, players int) {
	fmt.Fprintf(w, "\nMatches: %d  |  Skipped files: %d  |  Players: %d\n\n",
		matches, skipped, players)
}

// PrintPlayerRankings prints the cross-player ranking table.
// If focusName is non-empty, that player's row is marked with ">".
func PrintPlayerRankings(w io.Writer, session *aggregator.Session, names []string, focusName string) {
	table := newTable(w)
	table.Header(
		" ", "NAME", "GAMES", "WIN%", "K/G", "D/G", "KDA",
		"AVG_DMG", "DMG/MIN", "CS/MIN", "VIS/MIN", "DMG/GOLD", "MAIN", "POS",
	)

	for _, name := range names {
		p := session.Player(name)
		if p == nil {
			continue
		}
		marker := " "
		if focusName != "" && name == focusName {
			marker = ">"
		}
		table.Append(
			marker,
			p.Name,
			strconv.Itoa(p.GamesPlayed),
			fmt.Sprintf("%.0f%%", p.WinRate()*100),
			fmt.Sprintf("%.1f", p.KillsPerGame()),
			fmt.Sprintf("%.1f", p.DeathsPerGame()),
			fmt.Sprintf("%.2f", p.AverageKDA()),
			fmt.Sprintf("%.0f", p.AverageDamage()),
			fmt.Sprintf("%.0f", p.AverageDamagePerMinute()),
			fmt.Sprintf("%.1f", p.AverageCSPerMinute()),
			fmt.Sprintf("%.2f", p.AverageVisionPerMinute()),
			fmt.Sprintf("%.2f", p.AverageDamagePerGold()),
			p.MostPlayedChampion(),
			p.MostPlayedPosition().Short(),
		)
	}
	table.Render()
}

// PrintPlayerProfile prints one player's summary block and champion breakdown.
func PrintPlayerProfile(w io.Writer, p *aggregator.PlayerTotals) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", p.Name)
	fmt.Fprintf(w, "  Games played  : %d\n", p.GamesPlayed)
	fmt.Fprintf(w, "  Win rate      : %.0f%%\n", p.WinRate()*100)
	fmt.Fprintf(w, "  Average KDA   : %.2f\n", p.AverageKDA())
	fmt.Fprintf(w, "  Avg damage    : %.0f (%.0f/min)\n", p.AverageDamage(), p.AverageDamagePerMinute())
	fmt.Fprintf(w, "  CS per minute : %.1f\n", p.AverageCSPerMinute())
	fmt.Fprintf(w, "  Vision/min    : %.2f\n", p.AverageVisionPerMinute())
	fmt.Fprintf(w, "  Main champion : %s\n", p.MostPlayedChampion())
	fmt.Fprintf(w, "  Main position : %s\n", p.MostPlayedPosition().Short())

	champions := p.ChampionsByGames()
	if len(champions) == 0 {
		return
	}
	fmt.Fprintf(w, "\n--- Champions ---\n\n")
	table := newTable(w)
	table.Header("CHAMPION", "GAMES", "WIN%", "KDA")
	for _, name := range champions {
		c := p.Champion(name)
		if c == nil {
			continue
		}
		table.Append(
			name,
			strconv.Itoa(c.Games),
			fmt.Sprintf("%.0f%%", p.ChampionWinRate(name)*100),
			fmt.Sprintf("%.2f", p.ChampionKDA(name)),
		)
	}
	table.Render()
}

// PrintPositionComparison prints one player's averages against every player in
// the session sharing the same main position, plus the player's rank on each
// ranking metric. Requires at least two players at the position to say
// anything useful; the caller gates on that.
func PrintPositionComparison(w io.Writer, session *aggregator.Session, p *aggregator.PlayerTotals) {
	pos := p.MostPlayedPosition()
	avg, ok := session.PositionAverages(pos)
	if !ok {
		return
	}

	fmt.Fprintf(w, "\n--- %s vs %s average (%d players) ---\n\n", p.Name, pos.Short(), avg.Players)
	table := newTable(w)
	table.Header("METRIC", "PLAYER", "POS_AVG", "RANK")
	rows := []struct {
		label  string
		metric aggregator.RankMetric
		player float64
		avg    float64
		format string
	}{
		{"Win rate", aggregator.RankWinRate, p.WinRate() * 100, avg.WinRate * 100, "%.0f%%"},
		{"KDA", aggregator.RankKDA, p.AverageKDA(), avg.KDA, "%.2f"},
		{"Damage/min", aggregator.RankDamagePerMinute, p.AverageDamagePerMinute(), avg.DamagePerMinute, "%.0f"},
		{"CS/min", aggregator.RankCSPerMinute, p.AverageCSPerMinute(), avg.CSPerMinute, "%.1f"},
		{"Vision/min", aggregator.RankVisionPerMinute, p.AverageVisionPerMinute(), avg.VisionPerMinute, "%.2f"},
	}
	for _, r := range rows {
		rank, total := session.PositionRank(p.Name, r.metric)
		rankStr := "—"
		if total > 0 {
			rankStr = fmt.Sprintf("%d/%d", rank, total)
		}
		table.Append(
			r.label,
			fmt.Sprintf(r.format, r.player),
			fmt.Sprintf(r.format, r.avg),
			rankStr,
		)
	}
	table.Render()
}

// PrintTeamRoster prints the identified roster for a target player.
func PrintTeamRoster(w io.Writer, c *teams.Classification) {
	teammates := c.Teammates()
	fmt.Fprintf(w, "\nTarget: %s  |  Matches: %d  |  Teammates identified: %d\n\n",
		c.Target(), c.MatchesAnalyzed(), len(teammates))
	if len(teammates) == 0 {
		fmt.Fprintln(w, "Target never appears in the corpus; every record was treated as an opponent.")
		return
	}

	table := newTable(w)
	table.Header("PLAYER", "POSITIONS", "GAMES")
	roster := append([]string{c.Target()}, teammates...)
	for _, name := range roster {
		positions := ""
		games := 0
		for _, pos := range c.AllPositions() {
			samples := c.OurSamples(name, pos)
			if len(samples) == 0 {
				continue
			}
			if positions != "" {
				positions += " "
			}
			positions += fmt.Sprintf("%s(%d)", pos.Short(), len(samples))
			games += len(samples)
		}
		if positions == "" {
			positions = "—"
		}
		table.Append(name, positions, strconv.Itoa(games))
	}
	table.Render()
}

// PrintTeamComparison prints one player-vs-opponents comparison: the raw
// averages side by side with their differences, and both sides' 0–100 scores
// against the position's observed range.
func PrintTeamComparison(w io.Writer, cmp *normalize.Comparison) {
	oppGames := 0
	if cmp.OpponentStats != nil {
		oppGames = cmp.OpponentStats.Games
	}
	fmt.Fprintf(w, "\n--- %s @ %s (%d games vs %d opponent games) ---\n\n",
		cmp.Player, cmp.Position.Short(), cmp.PlayerStats.Games, oppGames)

	table := newTable(w)
	table.Header("METRIC", "PLAYER", "OPP_AVG", "DIFF", "DIFF%", "SCORE", "OPP_SCORE")
	for _, m := range normalize.Metrics() {
		player := m.Value(cmp.PlayerStats.Sample)
		oppStr, diffStr, pctStr, oppScoreStr := "—", "—", "—", "—"
		if cmp.OpponentStats != nil {
			abs, pct := cmp.RawDiff(m)
			oppStr = fmt.Sprintf("%.2f", m.Value(cmp.OpponentStats.Sample))
			diffStr = fmt.Sprintf("%+.2f", abs)
			pctStr = fmt.Sprintf("%+.0f%%", pct)
			oppScoreStr = fmt.Sprintf("%.0f", cmp.OpponentScores[m])
		}
		table.Append(
			m.String(),
			fmt.Sprintf("%.2f", player),
			oppStr,
			diffStr,
			pctStr,
			fmt.Sprintf("%.0f", cmp.PlayerScores[m]),
			oppScoreStr,
		)
	}
	table.Render()
}

// PrintGamesTable prints one row per loaded match.
func PrintGamesTable(w io.Writer, matches []*model.MatchRecord) {
	table := newTable(w)
	table.Header("FILE", "DURATION", "VERSION", "PLAYERS", "BLUE_K", "RED_K", "BLUE_DMG", "RED_DMG", "WINNER")
	for _, m := range matches {
		table.Append(
			m.File(),
			m.DurationFormatted(),
			m.Version(),
			strconv.Itoa(len(m.Participants())),
			strconv.Itoa(m.TeamKills(model.TeamBlue)),
			strconv.Itoa(m.TeamKills(model.TeamRed)),
			strconv.Itoa(m.TeamDamage(model.TeamBlue)),
			strconv.Itoa(m.TeamDamage(model.TeamRed)),
			winner(m),
		)
	}
	table.Render()
}

func winner(m *model.MatchRecord) string {
	for _, p := range m.Participants() {
		if p.Win() {
			switch p.Team() {
			case model.TeamBlue:
				return "BLUE"
			case model.TeamRed:
				return "RED"
			}
		}
	}
	return "—"
}
