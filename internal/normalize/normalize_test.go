package normalize

import (
	"math"
	"testing"

	"github.com/aezurly/go-lol-metrics/internal/model"
	"github.com/aezurly/go-lol-metrics/internal/teams"
)

// ---- Scale tests ----

func TestNormalize_Bounds(t *testing.T) {
	if got := Normalize(10, 10, 20, true); got != 0 {
		t.Errorf("min value, higher better: want 0, got %f", got)
	}
	if got := Normalize(20, 10, 20, true); got != 100 {
		t.Errorf("max value, higher better: want 100, got %f", got)
	}
	if got := Normalize(10, 10, 20, false); got != 100 {
		t.Errorf("min value, lower better: want 100, got %f", got)
	}
	if got := Normalize(20, 10, 20, false); got != 0 {
		t.Errorf("max value, lower better: want 0, got %f", got)
	}
	if got := Normalize(15, 10, 20, true); got != 50 {
		t.Errorf("midpoint: want 50, got %f", got)
	}
}

// TestNormalize_DegenerateRange: max == min scores exactly 50, regardless of
// the value or direction.
func TestNormalize_DegenerateRange(t *testing.T) {
	for _, higher := range []bool{true, false} {
		for _, v := range []float64{-5, 0, 7, 7.0001} {
			if got := Normalize(v, 7, 7, higher); got != 50.0 {
				t.Errorf("Normalize(%f, 7, 7, %v): want exactly 50.0, got %f", v, higher, got)
			}
		}
	}
}

// TestNormalize_Clamp: values outside the reference range clamp to [0, 100].
func TestNormalize_Clamp(t *testing.T) {
	if got := Normalize(5, 10, 20, true); got != 0 {
		t.Errorf("below range, higher better: want 0, got %f", got)
	}
	if got := Normalize(25, 10, 20, true); got != 100 {
		t.Errorf("above range, higher better: want 100, got %f", got)
	}
	if got := Normalize(5, 10, 20, false); got != 100 {
		t.Errorf("below range, lower better: want 100, got %f", got)
	}
	if got := Normalize(25, 10, 20, false); got != 0 {
		t.Errorf("above range, lower better: want 0, got %f", got)
	}
}

// TestNormalize_Complementary: for in-range values the two directions sum to
// 100.
func TestNormalize_Complementary(t *testing.T) {
	for _, v := range []float64{10, 12.5, 15, 19.99, 20} {
		up := Normalize(v, 10, 20, true)
		down := Normalize(v, 10, 20, false)
		if math.Abs(up+down-100) > 1e-9 {
			t.Errorf("Normalize(%f) directions: %f + %f != 100", v, up, down)
		}
	}
}

// TestNormalize_Monotonic: a bigger raw value never scores lower when higher
// is better, and never scores higher when lower is better.
func TestNormalize_Monotonic(t *testing.T) {
	prevUp, prevDown := -1.0, 101.0
	for v := 0.0; v <= 30; v += 0.5 {
		up := Normalize(v, 10, 20, true)
		down := Normalize(v, 10, 20, false)
		if up < prevUp {
			t.Fatalf("higher-is-better not monotonic at %f: %f < %f", v, up, prevUp)
		}
		if down > prevDown {
			t.Fatalf("lower-is-better not monotonic at %f: %f > %f", v, down, prevDown)
		}
		prevUp, prevDown = up, down
	}
}

// ---- Metric tests ----

func TestMetricDirection(t *testing.T) {
	for _, m := range Metrics() {
		want := m != MetricDeaths
		if got := m.HigherIsBetter(); got != want {
			t.Errorf("%s.HigherIsBetter: want %v, got %v", m, want, got)
		}
	}
}

func TestMetricValue(t *testing.T) {
	s := model.Sample{
		Kills: 1, Deaths: 2, Assists: 3,
		DamagePerMinute: 4, CSPerMinute: 5, VisionPerMinute: 6, KDA: 7,
	}
	cases := map[Metric]float64{
		MetricKills:           1,
		MetricDeaths:          2,
		MetricAssists:         3,
		MetricDamagePerMinute: 4,
		MetricCSPerMinute:     5,
		MetricVisionPerMinute: 6,
		MetricKDA:             7,
	}
	for m, want := range cases {
		if got := m.Value(s); got != want {
			t.Errorf("%s.Value: want %f, got %f", m, want, got)
		}
	}
}

// ---- Range and comparison tests ----

// makeRecord builds a participant record for one game.
func makeRecord(name, team, position string, kills, deaths int) model.ParticipantRecord {
	return model.NewParticipantRecord(map[string]any{
		"RIOT_ID_GAME_NAME":   name,
		"SKIN":                "Ahri",
		"TEAM":                team,
		"INDIVIDUAL_POSITION": position,
		"CHAMPIONS_KILLED":    float64(kills),
		"NUM_DEATHS":          float64(deaths),
	})
}

// classificationFixture: target mid with 10 kills / 1 death, one mid opponent
// with 2 kills / 9 deaths.
func classificationFixture() *teams.Classification {
	m := model.NewMatchRecord("g1.json", 1800, "14.1", []model.ParticipantRecord{
		makeRecord("Aezurly", "100", "MIDDLE", 10, 1),
		makeRecord("EnemyMid", "200", "MIDDLE", 2, 9),
	})
	return teams.NewClassification([]*model.MatchRecord{m}, "Aezurly")
}

func TestStatRanges_PoolsBothSides(t *testing.T) {
	c := classificationFixture()
	ranges := StatRanges(c, model.PositionMiddle)

	kills, ok := ranges[MetricKills]
	if !ok {
		t.Fatal("want a kills range at mid")
	}
	if kills.Min != 2 || kills.Max != 10 {
		t.Errorf("kills range: want [2, 10], got [%f, %f]", kills.Min, kills.Max)
	}
	deaths := ranges[MetricDeaths]
	if deaths.Min != 1 || deaths.Max != 9 {
		t.Errorf("deaths range: want [1, 9], got [%f, %f]", deaths.Min, deaths.Max)
	}

	if got := StatRanges(c, model.PositionJungle); len(got) != 0 {
		t.Errorf("empty position: want no ranges, got %v", got)
	}
}

func TestCompare_ScoresAgainstObservedRange(t *testing.T) {
	c := classificationFixture()
	cmp := Compare(c, "Aezurly", model.PositionMiddle)
	if cmp == nil {
		t.Fatal("want a comparison, got nil")
	}

	// Both players define the range ends, so the scores pin to 0 and 100.
	if got := cmp.PlayerScores[MetricKills]; got != 100 {
		t.Errorf("player kills score: want 100, got %f", got)
	}
	if got := cmp.OpponentScores[MetricKills]; got != 0 {
		t.Errorf("opponent kills score: want 0, got %f", got)
	}
	// Deaths invert: fewer deaths scores higher.
	if got := cmp.PlayerScores[MetricDeaths]; got != 100 {
		t.Errorf("player deaths score: want 100, got %f", got)
	}
	if got := cmp.OpponentScores[MetricDeaths]; got != 0 {
		t.Errorf("opponent deaths score: want 0, got %f", got)
	}

	abs, pct := cmp.RawDiff(MetricKills)
	if math.Abs(abs-8) > 1e-9 {
		t.Errorf("kills diff: want +8, got %f", abs)
	}
	if math.Abs(pct-400) > 1e-9 {
		t.Errorf("kills diff pct: want +400%%, got %f", pct)
	}
}

func TestCompare_NoSamples(t *testing.T) {
	c := classificationFixture()
	if got := Compare(c, "Aezurly", model.PositionJungle); got != nil {
		t.Errorf("no samples at jungle: want nil, got %+v", got)
	}
	if got := Compare(c, "Nobody", model.PositionMiddle); got != nil {
		t.Errorf("unknown player: want nil, got %+v", got)
	}
}

// TestCompare_NoOpponents: a position only our side ever played still yields
// player scores; opponent fields stay empty.
func TestCompare_NoOpponents(t *testing.T) {
	m := model.NewMatchRecord("g1.json", 1800, "14.1", []model.ParticipantRecord{
		makeRecord("Aezurly", "100", "MIDDLE", 10, 1),
		makeRecord("Ally", "100", "BOTTOM", 3, 2),
	})
	c := teams.NewClassification([]*model.MatchRecord{m}, "Aezurly")

	cmp := Compare(c, "Ally", model.PositionBottom)
	if cmp == nil {
		t.Fatal("want a comparison, got nil")
	}
	if cmp.OpponentStats != nil {
		t.Errorf("want nil opponent stats, got %+v", cmp.OpponentStats)
	}
	// A single sample makes every range degenerate: all scores are 50.
	for _, metric := range Metrics() {
		if got := cmp.PlayerScores[metric]; got != 50.0 {
			t.Errorf("%s score with one sample: want 50.0, got %f", metric, got)
		}
	}
}
