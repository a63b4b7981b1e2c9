// Package normalize projects raw per-position statistics onto a shared 0–100
// scale so different units (kills vs damage per minute) can sit on the same
// chart. The reference range for each metric is the observed min/max across
// everyone who played the position — both sides — so a score of 100 means
// "best seen at this position in this corpus", not a global standard.
package normalize

import (
	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/teams"
)

// Metric identifies one of the normalized comparison axes.
type Metric int

const (
	MetricKills Metric = iota
	MetricDeaths
	MetricAssists
	MetricDamagePerMinute
	MetricCSPerMinute
	MetricVisionPerMinute
	MetricKDA
)

// Metrics lists the comparison axes in display order.
func Metrics() []Metric {
	return []Metric{
		MetricKills,
		MetricDeaths,
		MetricAssists,
		MetricDamagePerMinute,
		MetricCSPerMinute,
		MetricVisionPerMinute,
		MetricKDA,
	}
}

func (m Metric) String() string {
	switch m {
	case MetricKills:
		return "Kills"
	case MetricDeaths:
		return "Deaths"
	case MetricAssists:
		return "Assists"
	case MetricDamagePerMinute:
		return "Damage/min"
	case MetricCSPerMinute:
		return "CS/min"
	case MetricVisionPerMinute:
		return "Vision/min"
	case MetricKDA:
		return "KDA"
	default:
		return model.Unknown
	}
}

// HigherIsBetter reports the metric's direction. Deaths is the only axis
// where a lower raw value scores higher.
func (m Metric) HigherIsBetter() bool {
	return m != MetricDeaths
}

// Value extracts the metric from a sample (or an averaged sample).
func (m Metric) Value(s model.Sample) float64 {
	switch m {
	case MetricKills:
		return s.Kills
	case MetricDeaths:
		return s.Deaths
	case MetricAssists:
		return s.Assists
	case MetricDamagePerMinute:
		return s.DamagePerMinute
	case MetricCSPerMinute:
		return s.CSPerMinute
	case MetricVisionPerMinute:
		return s.VisionPerMinute
	case MetricKDA:
		return s.KDA
	default:
		return 0
	}
}

// Range is the observed [Min, Max] of one metric at one position.
type Range struct {
	Min float64
	Max float64
}

// Normalize maps value onto [0, 100] against the reference range. With a
// degenerate range (max == min) every value scores exactly 50. Values outside
// the range clamp to the nearest bound; the direction flag inverts the scale
// for lower-is-better metrics.
func Normalize(value, min, max float64, higherIsBetter bool) float64 {
	if max == min {
		return 50.0
	}
	var pct float64
	if higherIsBetter {
		pct = (value - min) / (max - min) * 100
	} else {
		pct = (max - value) / (max - min) * 100
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// StatRanges computes the per-metric reference ranges at one position by
// pooling every sample recorded there, ours and opponents alike. Positions
// with no samples at all yield an empty map.
func StatRanges(c *teams.Classification, pos model.Position) map[Metric]Range {
	var pool []model.Sample
	for _, name := range c.PlayersAtPosition(pos) {
		pool = append(pool, c.OurSamples(name, pos)...)
	}
	pool = append(pool, c.OpponentSamples(pos)...)

	ranges := make(map[Metric]Range, len(Metrics()))
	if len(pool) == 0 {
		return ranges
	}
	for _, m := range Metrics() {
		r := Range{Min: m.Value(pool[0]), Max: m.Value(pool[0])}
		for _, s := range pool[1:] {
			v := m.Value(s)
			if v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
		}
		ranges[m] = r
	}
	return ranges
}

// Comparison is one player's averaged stats at a position set against the
// pooled opponents who played the same position, on both the raw and the
// normalized scale.
type Comparison struct {
	Player   string
	Position model.Position

	PlayerStats   *teams.AverageStats
	OpponentStats *teams.AverageStats

	PlayerScores   map[Metric]float64
	OpponentScores map[Metric]float64
}

// Compare assembles the player-vs-opponents comparison at a position. It
// returns nil when the player has no samples there; opponents may be absent,
// in which case OpponentStats is nil and OpponentScores is empty.
func Compare(c *teams.Classification, player string, pos model.Position) *Comparison {
	playerStats := c.AverageStatsForPlayer(player, pos)
	if playerStats == nil {
		return nil
	}
	opponentStats := c.AverageStatsForOpponents(pos)
	ranges := StatRanges(c, pos)

	cmp := &Comparison{
		Player:         player,
		Position:       pos,
		PlayerStats:    playerStats,
		OpponentStats:  opponentStats,
		PlayerScores:   make(map[Metric]float64, len(Metrics())),
		OpponentScores: make(map[Metric]float64, len(Metrics())),
	}
	for _, m := range Metrics() {
		r, ok := ranges[m]
		if !ok {
			continue
		}
		cmp.PlayerScores[m] = Normalize(m.Value(playerStats.Sample), r.Min, r.Max, m.HigherIsBetter())
		if opponentStats != nil {
			cmp.OpponentScores[m] = Normalize(m.Value(opponentStats.Sample), r.Min, r.Max, m.HigherIsBetter())
		}
	}
	return cmp
}

// RawDiff returns the player-minus-opponents difference on a metric, absolute
// and as a percentage of the opponent average. The percentage is 0 when the
// opponent average is 0 or when there are no opponents.
func (c *Comparison) RawDiff(m Metric) (abs, pct float64) {
	if c.OpponentStats == nil {
		return m.Value(c.PlayerStats.Sample), 0
	}
	player := m.Value(c.PlayerStats.Sample)
	opp := m.Value(c.OpponentStats.Sample)
	abs = player - opp
	if opp != 0 {
		pct = abs / opp * 100
	}
	return abs, pct
}
