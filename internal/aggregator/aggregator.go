// Package aggregator accumulates per-match participant records into running
// per-player totals and answers ranking, search and lookup queries over them.
package aggregator

import (
	"sort"
	"strings"

	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/names"
)

// ChampionTotals is the per-champion sub-total slice of a player's aggregate.
type ChampionTotals struct {
	Games   int
	Wins    int
	Kills   int
	Deaths  int
	Assists int
}

// PlayerTotals is the mutable running aggregate for one player identity across
// every match seen in a scan. All cumulative sums only ever grow; derived
// averages are computed on demand and never cached. Calling AddGameStats twice
// for the same match double-counts — not submitting twice is the caller's job.
type PlayerTotals struct {
	Name string // normalized

	GamesPlayed          int
	TotalWins            int
	TotalDamage          int
	TotalKills           int
	TotalDeaths          int
	TotalAssists         int
	TotalCS              int
	TotalVisionScore     int
	TotalGoldSpent       int
	TotalDurationSeconds int

	ChampionsPlayed map[string]int
	PositionsPlayed map[model.Position]int

	championTotals map[string]*ChampionTotals
}

// NewPlayerTotals creates an empty aggregate for the given (raw) name.
func NewPlayerTotals(name string) *PlayerTotals {
	return &PlayerTotals{
		Name:            names.Normalize(name),
		ChampionsPlayed: make(map[string]int),
		PositionsPlayed: make(map[model.Position]int),
		championTotals:  make(map[string]*ChampionTotals),
	}
}

// AddGameStats folds one participant record and its match duration into the
// aggregate.
func (t *PlayerTotals) AddGameStats(r model.ParticipantRecord, durationSeconds int) {
	t.GamesPlayed++
	champion := r.Champion()
	win := r.Win()

	if win {
		t.TotalWins++
	}
	t.TotalDamage += r.TotalDamage()
	t.TotalKills += r.Kills()
	t.TotalDeaths += r.Deaths()
	t.TotalAssists += r.Assists()
	t.TotalCS += r.CS()
	t.TotalVisionScore += r.VisionScore()
	t.TotalGoldSpent += r.GoldSpent()
	t.TotalDurationSeconds += durationSeconds
	t.ChampionsPlayed[champion]++
	t.PositionsPlayed[r.Position()]++

	ct := t.championTotals[champion]
	if ct == nil {
		ct = &ChampionTotals{}
		t.championTotals[champion] = ct
	}
	ct.Games++
	if win {
		ct.Wins++
	}
	ct.Kills += r.Kills()
	ct.Deaths += r.Deaths()
	ct.Assists += r.Assists()
}

// AverageDamage returns damage per game, 0 with no games.
func (t *PlayerTotals) AverageDamage() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	return float64(t.TotalDamage) / float64(t.GamesPlayed)
}

// AverageKDA computes per-game average kills, deaths and assists first, then
// applies the zero-death KDA fallback to those averages. This ratio of
// per-game averages is the one KDA formula used everywhere in the aggregate
// layer; it intentionally differs from averaging per-game KDA ratios.
func (t *PlayerTotals) AverageKDA() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	g := float64(t.GamesPlayed)
	avgKills := float64(t.TotalKills) / g
	avgDeaths := float64(t.TotalDeaths) / g
	avgAssists := float64(t.TotalAssists) / g
	if avgDeaths > 0 {
		return (avgKills + avgAssists) / avgDeaths
	}
	return avgKills + avgAssists
}

func (t *PlayerTotals) totalMinutes() float64 {
	return float64(t.TotalDurationSeconds) / 60
}

// AverageCSPerMinute returns total CS over total minutes played, 0 with no time.
func (t *PlayerTotals) AverageCSPerMinute() float64 {
	if m := t.totalMinutes(); m > 0 {
		return float64(t.TotalCS) / m
	}
	return 0
}

// AverageVisionPerMinute returns total vision score over total minutes, 0 with no time.
func (t *PlayerTotals) AverageVisionPerMinute() float64 {
	if m := t.totalMinutes(); m > 0 {
		return float64(t.TotalVisionScore) / m
	}
	return 0
}

// AverageDamagePerMinute returns total damage over total minutes, 0 with no time.
func (t *PlayerTotals) AverageDamagePerMinute() float64 {
	if m := t.totalMinutes(); m > 0 {
		return float64(t.TotalDamage) / m
	}
	return 0
}

// AverageDamagePerGold returns total damage over total gold spent, 0 with no gold.
func (t *PlayerTotals) AverageDamagePerGold() float64 {
	if t.TotalGoldSpent == 0 {
		return 0
	}
	return float64(t.TotalDamage) / float64(t.TotalGoldSpent)
}

// WinRate returns wins over games played as a fraction, 0 with no games.
func (t *PlayerTotals) WinRate() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	return float64(t.TotalWins) / float64(t.GamesPlayed)
}

// KillsPerGame returns average kills per game, 0 with no games.
func (t *PlayerTotals) KillsPerGame() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	return float64(t.TotalKills) / float64(t.GamesPlayed)
}

// DeathsPerGame returns average deaths per game, 0 with no games.
func (t *PlayerTotals) DeathsPerGame() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	return float64(t.TotalDeaths) / float64(t.GamesPlayed)
}

// MostPlayedChampion returns the champion with the highest play count.
// Ties break to the lexicographically smaller name so the result is
// deterministic across runs.
func (t *PlayerTotals) MostPlayedChampion() string {
	best, bestCount := model.Unknown, 0
	for champ, count := range t.ChampionsPlayed {
		if count > bestCount || (count == bestCount && bestCount > 0 && champ < best) {
			best, bestCount = champ, count
		}
	}
	return best
}

// MostPlayedPosition returns the role with the highest play count, with the
// same deterministic tie-break as MostPlayedChampion.
func (t *PlayerTotals) MostPlayedPosition() model.Position {
	best, bestCount := model.PositionUnknown, 0
	for pos, count := range t.PositionsPlayed {
		if count > bestCount || (count == bestCount && bestCount > 0 && pos.String() < best.String()) {
			best, bestCount = pos, count
		}
	}
	return best
}

// ChampionWinRate returns the win rate on one champion, 0 if never played.
func (t *PlayerTotals) ChampionWinRate(champion string) float64 {
	ct := t.championTotals[champion]
	if ct == nil || ct.Games == 0 {
		return 0
	}
	return float64(ct.Wins) / float64(ct.Games)
}

// ChampionKDA returns the KDA over one champion's sub-totals, 0 if never played.
func (t *PlayerTotals) ChampionKDA(champion string) float64 {
	ct := t.championTotals[champion]
	if ct == nil {
		return 0
	}
	ka := float64(ct.Kills + ct.Assists)
	if ct.Deaths > 0 {
		return ka / float64(ct.Deaths)
	}
	return ka
}

// Champion returns the sub-totals for one champion, nil if never played.
func (t *PlayerTotals) Champion(champion string) *ChampionTotals {
	return t.championTotals[champion]
}

// ChampionsByGames returns the player's champions sorted by play count
// descending, name ascending on ties.
func (t *PlayerTotals) ChampionsByGames() []string {
	out := make([]string, 0, len(t.ChampionsPlayed))
	for champ := range t.ChampionsPlayed {
		out = append(out, champ)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := t.ChampionsPlayed[out[i]], t.ChampionsPlayed[out[j]]
		if ci != cj {
			return ci > cj
		}
		return out[i] < out[j]
	})
	return out
}

// Session owns the per-player aggregates for one corpus scan. It is built by
// feeding it matches and then queried; it is not safe for concurrent writers
// and is discarded when the scan session ends.
type Session struct {
	players         map[string]*PlayerTotals
	matchesAnalyzed int
}

// NewSession creates an empty aggregation session.
func NewSession() *Session {
	return &Session{players: make(map[string]*PlayerTotals)}
}

// AddMatch folds every participant of one match into the session.
func (s *Session) AddMatch(m *model.MatchRecord) {
	s.matchesAnalyzed++
	duration := m.DurationSeconds()
	for _, p := range m.Participants() {
		key := names.Normalize(p.Name())
		totals := s.players[key]
		if totals == nil {
			totals = NewPlayerTotals(key)
			s.players[key] = totals
		}
		totals.AddGameStats(p, duration)
	}
}

// AddCorpus folds a whole corpus, one match at a time.
func (s *Session) AddCorpus(matches []*model.MatchRecord) {
	for _, m := range matches {
		s.AddMatch(m)
	}
}

// MatchesAnalyzed returns how many matches the session has consumed.
func (s *Session) MatchesAnalyzed() int { return s.matchesAnalyzed }

// Player returns the aggregate for an exact normalized name, nil if unseen.
func (s *Session) Player(name string) *PlayerTotals {
	return s.players[names.Normalize(name)]
}

// FindPlayer resolves a name leniently: exact normalized match first, then a
// mojibake-repaired variant, then accent- and case-insensitive comparison.
// Returns nil when nothing matches.
func (s *Session) FindPlayer(name string) *PlayerTotals {
	if t := s.players[names.Normalize(name)]; t != nil {
		return t
	}
	fixed := names.Normalize(names.FixEncoding(name))
	if t := s.players[fixed]; t != nil {
		return t
	}
	wantA, wantB := names.Fold(name), names.Fold(fixed)
	// Deterministic pick if several names fold to the same key.
	for _, candidate := range s.AllPlayers() {
		folded := names.Fold(candidate)
		if folded == wantA || folded == wantB {
			return s.players[candidate]
		}
	}
	return nil
}

// AllPlayers returns every player name seen, sorted.
func (s *Session) AllPlayers() []string {
	out := make([]string, 0, len(s.players))
	for name := range s.players {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ActivePlayers returns aggregates with at least one game, sorted by name.
func (s *Session) ActivePlayers() []*PlayerTotals {
	var out []*PlayerTotals
	for _, name := range s.AllPlayers() {
		if t := s.players[name]; t.GamesPlayed > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the names containing term, case-insensitively, sorted.
func (s *Session) Search(term string) []string {
	term = strings.ToLower(term)
	var out []string
	for _, name := range s.AllPlayers() {
		if strings.Contains(strings.ToLower(name), term) {
			out = append(out, name)
		}
	}
	return out
}

// topBy returns up to limit active players sorted descending by the metric,
// name ascending on equal values. limit <= 0 means no cap.
func (s *Session) topBy(limit int, metric func(*PlayerTotals) float64) []*PlayerTotals {
	ranked := s.ActivePlayers()
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := metric(ranked[i]), metric(ranked[j])
		if vi != vj {
			return vi > vj
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopByAverageDamage ranks active players by average damage per game.
func (s *Session) TopByAverageDamage(limit int) []*PlayerTotals {
	return s.topBy(limit, (*PlayerTotals).AverageDamage)
}

// TopByAverageKDA ranks active players by average KDA.
func (s *Session) TopByAverageKDA(limit int) []*PlayerTotals {
	return s.topBy(limit, (*PlayerTotals).AverageKDA)
}

// PlayersAtPosition returns active players whose most played role is pos.
func (s *Session) PlayersAtPosition(pos model.Position) []*PlayerTotals {
	var out []*PlayerTotals
	for _, t := range s.ActivePlayers() {
		if t.MostPlayedPosition() == pos {
			out = append(out, t)
		}
	}
	return out
}

// PositionAverages are the mean per-player averages across everyone whose
// most played role is the position.
type PositionAverages struct {
	Players         int
	WinRate         float64
	KDA             float64
	DamagePerMinute float64
	CSPerMinute     float64
	VisionPerMinute float64
}

// PositionAverages computes the position-wide means; ok is false when nobody
// plays the position.
func (s *Session) PositionAverages(pos model.Position) (PositionAverages, bool) {
	players := s.PlayersAtPosition(pos)
	if len(players) == 0 {
		return PositionAverages{}, false
	}
	avg := PositionAverages{Players: len(players)}
	for _, t := range players {
		avg.WinRate += t.WinRate()
		avg.KDA += t.AverageKDA()
		avg.DamagePerMinute += t.AverageDamagePerMinute()
		avg.CSPerMinute += t.AverageCSPerMinute()
		avg.VisionPerMinute += t.AverageVisionPerMinute()
	}
	n := float64(len(players))
	avg.WinRate /= n
	avg.KDA /= n
	avg.DamagePerMinute /= n
	avg.CSPerMinute /= n
	avg.VisionPerMinute /= n
	return avg, true
}

// RankMetric selects the metric PositionRank orders by.
type RankMetric int

const (
	RankWinRate RankMetric = iota
	RankKDA
	RankDamagePerMinute
	RankCSPerMinute
	RankVisionPerMinute
)

func (m RankMetric) value(t *PlayerTotals) float64 {
	switch m {
	case RankWinRate:
		return t.WinRate()
	case RankKDA:
		return t.AverageKDA()
	case RankDamagePerMinute:
		return t.AverageDamagePerMinute()
	case RankCSPerMinute:
		return t.AverageCSPerMinute()
	case RankVisionPerMinute:
		return t.AverageVisionPerMinute()
	default:
		return 0
	}
}

// PositionRank returns the player's 1-based rank for the metric among players
// at their most played position, and how many players that is. (0, 0) when
// the player is unknown; (1, 1) when they are alone at the position.
func (s *Session) PositionRank(name string, metric RankMetric) (rank, total int) {
	t := s.Player(name)
	if t == nil {
		return 0, 0
	}
	peers := s.PlayersAtPosition(t.MostPlayedPosition())
	if len(peers) < 2 {
		return 1, 1
	}
	value := metric.value(t)
	rank = 1
	for _, peer := range peers {
		if metric.value(peer) > value {
			rank++
		}
	}
	return rank, len(peers)
}
