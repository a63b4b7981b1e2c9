// Package teams infers a target player's full roster from co-occurrence in
// matches and partitions every participant record in a corpus into "ours" vs
// "opponents" buckets keyed by position. There is no roster source in the
// data; two full passes over the corpus stand in for one.
package teams

import (
	"sort"

	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/names"
)

// IdentifyTeammates is the first pass: every match containing the target
// contributes all same-team co-participants (excluding the target) to the
// teammate set. A player is never added from a match the target is absent
// from. The result is keyed by normalized name.
func IdentifyTeammates(corpus []*model.MatchRecord, target string) map[string]struct{} {
	want := names.Normalize(target)
	teammates := make(map[string]struct{})
	for _, m := range corpus {
		team, found := findTargetTeam(m, want)
		if !found {
			continue
		}
		for _, p := range m.Participants() {
			name := names.Normalize(p.Name())
			if p.Team() == team && name != want {
				teammates[name] = struct{}{}
			}
		}
	}
	return teammates
}

// findTargetTeam locates the target's record in one match and returns its
// team id.
func findTargetTeam(m *model.MatchRecord, normalizedTarget string) (string, bool) {
	for _, p := range m.Participants() {
		if names.Normalize(p.Name()) == normalizedTarget {
			return p.Team(), true
		}
	}
	return "", false
}

// Classification is the result of partitioning a corpus relative to one
// target player. Built once by Classify; re-running on an unchanged corpus
// yields an identical result. If the target never appears in any match the
// teammate set is empty and every sample lands in opponents — a silent
// degenerate outcome callers detect via Teammates().
type Classification struct {
	target    string // normalized
	teammates map[string]struct{}

	ours      map[model.Position]map[string][]model.Sample
	opponents map[model.Position][]model.Sample

	matchesAnalyzed int
}

// Classify is the second pass: every participant record in the corpus is
// bucketed as ours or opponents and stored as a per-match derived-stat sample
// keyed by position. In a match the target appears in, membership is decided
// by that match's team id, so a roster member standing on the enemy side that
// day is an opponent for that match. In matches without the target, the
// established teammate set (plus the target's own name) decides.
func Classify(corpus []*model.MatchRecord, teammates map[string]struct{}, target string) *Classification {
	c := &Classification{
		target:    names.Normalize(target),
		teammates: teammates,
		ours:      make(map[model.Position]map[string][]model.Sample),
		opponents: make(map[model.Position][]model.Sample),
	}
	for _, m := range corpus {
		c.matchesAnalyzed++
		duration := m.DurationSeconds()
		team, targetPresent := findTargetTeam(m, c.target)
		for _, p := range m.Participants() {
			name := names.Normalize(p.Name())
			sample := model.NewSample(p, duration)
			position := p.Position()

			var ours bool
			if targetPresent {
				ours = p.Team() == team
			} else {
				_, known := teammates[name]
				ours = known || name == c.target
			}
			if ours {
				byName := c.ours[position]
				if byName == nil {
					byName = make(map[string][]model.Sample)
					c.ours[position] = byName
				}
				byName[name] = append(byName[name], sample)
			} else {
				c.opponents[position] = append(c.opponents[position], sample)
			}
		}
	}
	return c
}

// NewClassification runs both passes over the corpus.
func NewClassification(corpus []*model.MatchRecord, target string) *Classification {
	return Classify(corpus, IdentifyTeammates(corpus, target), target)
}

// Target returns the normalized target name.
func (c *Classification) Target() string { return c.target }

// MatchesAnalyzed returns how many matches the collecting pass consumed.
func (c *Classification) MatchesAnalyzed() int { return c.matchesAnalyzed }

// Teammates returns the identified roster (excluding the target), sorted.
// Empty means the target was never found in the corpus.
func (c *Classification) Teammates() []string {
	out := make([]string, 0, len(c.teammates))
	for name := range c.teammates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PlayersAtPosition returns our players with at least one sample at the
// position, sorted.
func (c *Classification) PlayersAtPosition(pos model.Position) []string {
	byName := c.ours[pos]
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AllPositions returns the positions holding at least one "ours" sample, in
// draft order with the unknown bucket last.
func (c *Classification) AllPositions() []model.Position {
	var out []model.Position
	for _, pos := range model.AllPositions() {
		if len(c.ours[pos]) > 0 {
			out = append(out, pos)
		}
	}
	if len(c.ours[model.PositionUnknown]) > 0 {
		out = append(out, model.PositionUnknown)
	}
	return out
}

// OurSamples returns one player's samples at a position, nil when absent.
func (c *Classification) OurSamples(name string, pos model.Position) []model.Sample {
	return c.ours[pos][names.Normalize(name)]
}

// OpponentSamples returns the pooled opponent samples at a position.
func (c *Classification) OpponentSamples(pos model.Position) []model.Sample {
	return c.opponents[pos]
}

// AverageStats is the element-wise average of a set of samples. Champion is
// the mode rather than an average; Games is the sample count.
type AverageStats struct {
	model.Sample
	Games int
}

// AverageStatsForPlayer averages one of our players' samples at a position.
// nil when the player has no samples there.
func (c *Classification) AverageStatsForPlayer(name string, pos model.Position) *AverageStats {
	return averageSamples(c.OurSamples(name, pos))
}

// AverageStatsForOpponents averages the pooled opponent samples at a
// position. nil when there are none.
func (c *Classification) AverageStatsForOpponents(pos model.Position) *AverageStats {
	return averageSamples(c.opponents[pos])
}

func averageSamples(samples []model.Sample) *AverageStats {
	if len(samples) == 0 {
		return nil
	}
	avg := &AverageStats{Games: len(samples)}
	championCounts := make(map[string]int)
	for _, s := range samples {
		avg.Kills += s.Kills
		avg.Deaths += s.Deaths
		avg.Assists += s.Assists
		avg.Damage += s.Damage
		avg.DamagePerMinute += s.DamagePerMinute
		avg.CS += s.CS
		avg.CSPerMinute += s.CSPerMinute
		avg.VisionScore += s.VisionScore
		avg.VisionPerMinute += s.VisionPerMinute
		avg.DamagePerGold += s.DamagePerGold
		avg.GoldSpent += s.GoldSpent
		avg.Level += s.Level
		avg.KDA += s.KDA
		championCounts[s.Champion]++
	}
	n := float64(len(samples))
	avg.Kills /= n
	avg.Deaths /= n
	avg.Assists /= n
	avg.Damage /= n
	avg.DamagePerMinute /= n
	avg.CS /= n
	avg.CSPerMinute /= n
	avg.VisionScore /= n
	avg.VisionPerMinute /= n
	avg.DamagePerGold /= n
	avg.GoldSpent /= n
	avg.Level /= n
	avg.KDA /= n

	best, bestCount := model.Unknown, 0
	for champ, count := range championCounts {
		if count > bestCount || (count == bestCount && bestCount > 0 && champ < best) {
			best, bestCount = champ, count
		}
	}
	avg.Champion = best
	return avg
}
