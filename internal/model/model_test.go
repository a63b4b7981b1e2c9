package model

import (
	"math"
	"testing"
)

// makeRecord builds a participant record from raw fields.
func makeRecord(fields map[string]any) ParticipantRecord {
	return NewParticipantRecord(fields)
}

// ---- Field fallback tests ----

// TestFieldFallback_CanonicalWins: when both spellings are present, the
// canonical SCREAMING_SNAKE_CASE key is used.
func TestFieldFallback_CanonicalWins(t *testing.T) {
	r := makeRecord(map[string]any{
		"CHAMPIONS_KILLED": float64(7),
		"championsKilled":  float64(3),
	})
	if got := r.Kills(); got != 7 {
		t.Errorf("Kills: want 7 (canonical), got %d", got)
	}
}

// TestFieldFallback_LegacyUsed: the legacy camelCase key serves when the
// canonical one is absent.
func TestFieldFallback_LegacyUsed(t *testing.T) {
	r := makeRecord(map[string]any{
		"championsKilled": float64(3),
		"riotIdGameName":  "OldFormat",
	})
	if got := r.Kills(); got != 3 {
		t.Errorf("Kills: want 3 (legacy), got %d", got)
	}
	if got := r.Name(); got != "OldFormat" {
		t.Errorf("Name: want %q, got %q", "OldFormat", got)
	}
}

// TestFieldFallback_Defaults: absent fields default to 0 for numerics and
// Unknown for strings; empty strings also default to Unknown.
func TestFieldFallback_Defaults(t *testing.T) {
	r := makeRecord(map[string]any{"RIOT_ID_GAME_NAME": ""})
	if got := r.Kills(); got != 0 {
		t.Errorf("Kills on empty record: want 0, got %d", got)
	}
	if got := r.Name(); got != Unknown {
		t.Errorf("Name on empty value: want %q, got %q", Unknown, got)
	}
	if got := r.Champion(); got != Unknown {
		t.Errorf("Champion on empty record: want %q, got %q", Unknown, got)
	}
}

// TestFieldCoercion: numeric strings parse as ints, JSON numbers render as
// plain strings so a numeric team id compares equal to "100".
func TestFieldCoercion(t *testing.T) {
	r := makeRecord(map[string]any{
		"NUM_DEATHS": "4",
		"TEAM":       float64(100),
	})
	if got := r.Deaths(); got != 4 {
		t.Errorf("Deaths from string: want 4, got %d", got)
	}
	if got := r.Team(); got != TeamBlue {
		t.Errorf("Team from number: want %q, got %q", TeamBlue, got)
	}
}

// ---- Win detection tests ----

func TestWin_TruthySet(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{"Win", true},
		{"1", true},
		{float64(1), true},
		{true, true},
		{"Loss", false},
		{"0", false},
		{float64(0), false},
		{false, false},
		{"Fail", false},
	}
	for _, c := range cases {
		r := makeRecord(map[string]any{"WIN": c.value})
		if got := r.Win(); got != c.want {
			t.Errorf("Win(%v): want %v, got %v", c.value, c.want, got)
		}
	}
	// Missing field counts as a loss.
	if makeRecord(map[string]any{}).Win() {
		t.Error("Win on missing field: want false")
	}
}

// TestWin_LegacyKeyOnly: records carrying only the legacy camelCase key still
// resolve the win flag.
func TestWin_LegacyKeyOnly(t *testing.T) {
	if !makeRecord(map[string]any{"win": "Win"}).Win() {
		t.Error(`legacy {"win": "Win"}: want true`)
	}
	if makeRecord(map[string]any{"win": "Loss"}).Win() {
		t.Error(`legacy {"win": "Loss"}: want false`)
	}
}

// ---- Derived stat tests ----

func TestKDA_ZeroDeathFallback(t *testing.T) {
	withDeaths := makeRecord(map[string]any{
		"CHAMPIONS_KILLED": float64(5), "NUM_DEATHS": float64(2), "ASSISTS": float64(3),
	})
	if got := withDeaths.KDA(); got != 4.0 {
		t.Errorf("KDA 5/2/3: want 4.0, got %f", got)
	}
	deathless := makeRecord(map[string]any{
		"CHAMPIONS_KILLED": float64(5), "ASSISTS": float64(3),
	})
	if got := deathless.KDA(); got != 8.0 {
		t.Errorf("deathless KDA 5/0/3: want 8.0, got %f", got)
	}
}

func TestCS_MinionsPlusNeutral(t *testing.T) {
	r := makeRecord(map[string]any{
		"MINIONS_KILLED":         float64(150),
		"NEUTRAL_MINIONS_KILLED": float64(30),
	})
	if got := r.CS(); got != 180 {
		t.Errorf("CS: want 180, got %d", got)
	}
}

func TestDamagePerGold_ZeroGold(t *testing.T) {
	r := makeRecord(map[string]any{"TOTAL_DAMAGE_DEALT_TO_CHAMPIONS": float64(12000)})
	if got := r.DamagePerGold(); got != 0 {
		t.Errorf("DamagePerGold with no gold: want 0, got %f", got)
	}
}

func TestKillParticipation_ZeroTeamKills(t *testing.T) {
	r := makeRecord(map[string]any{"CHAMPIONS_KILLED": float64(5)})
	if got := r.KillParticipation(0); got != 0 {
		t.Errorf("KillParticipation(0): want 0, got %f", got)
	}
	if got := r.KillParticipation(10); got != 0.5 {
		t.Errorf("KillParticipation(10): want 0.5, got %f", got)
	}
}

// ---- Position tests ----

func TestParsePosition_Aliases(t *testing.T) {
	cases := []struct {
		raw  string
		want Position
	}{
		{"TOP", PositionTop},
		{"JUNGLE", PositionJungle},
		{"MIDDLE", PositionMiddle},
		{"BOTTOM", PositionBottom},
		{"UTILITY", PositionSupport},
		{"SUPPORT", PositionSupport},
		{"support", PositionSupport},
		{" ADC ", PositionBottom},
		{"NONE", PositionUnknown},
		{"", PositionUnknown},
	}
	for _, c := range cases {
		if got := ParsePosition(c.raw); got != c.want {
			t.Errorf("ParsePosition(%q): want %v, got %v", c.raw, c.want, got)
		}
	}
}

// ---- Match record tests ----

// teamFixture builds a full 10-participant match with known damage and kills
// split across the two sides.
func teamFixture() *MatchRecord {
	var participants []ParticipantRecord
	for i := 0; i < 5; i++ {
		participants = append(participants, makeRecord(map[string]any{
			"TEAM":                            TeamBlue,
			"CHAMPIONS_KILLED":                float64(2),
			"TOTAL_DAMAGE_DEALT_TO_CHAMPIONS": float64(1000),
			"WIN":                             "Win",
		}))
		participants = append(participants, makeRecord(map[string]any{
			"TEAM":                            TeamRed,
			"CHAMPIONS_KILLED":                float64(1),
			"TOTAL_DAMAGE_DEALT_TO_CHAMPIONS": float64(800),
			"WIN":                             "Fail",
		}))
	}
	return NewMatchRecord("game1.json", 1265, "14.1", participants)
}

// TestTeamTotals_Partition: the two team sums partition the match total, and
// an unknown team id contributes to neither.
func TestTeamTotals_Partition(t *testing.T) {
	m := teamFixture()
	if got := m.TeamDamage(TeamBlue); got != 5000 {
		t.Errorf("blue damage: want 5000, got %d", got)
	}
	if got := m.TeamDamage(TeamRed); got != 4000 {
		t.Errorf("red damage: want 4000, got %d", got)
	}
	total := 0
	for _, p := range m.Participants() {
		total += p.TotalDamage()
	}
	if m.TeamDamage(TeamBlue)+m.TeamDamage(TeamRed) != total {
		t.Error("team damage sums do not partition the match total")
	}
	if got := m.TeamKills(TeamBlue); got != 10 {
		t.Errorf("blue kills: want 10, got %d", got)
	}
	if got := m.TeamDamage("300"); got != 0 {
		t.Errorf("unknown team damage: want 0, got %d", got)
	}
}

// TestDurationFormatted: seconds are not zero-padded.
func TestDurationFormatted(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{1265, "21:5"},
		{1830, "30:30"},
		{59, "0:59"},
		{0, "0:0"},
	}
	for _, c := range cases {
		m := NewMatchRecord("x.json", c.seconds, "", nil)
		if got := m.DurationFormatted(); got != c.want {
			t.Errorf("DurationFormatted(%d): want %q, got %q", c.seconds, c.want, got)
		}
	}
}

func TestNewMatchRecord_NegativeDurationClamped(t *testing.T) {
	m := NewMatchRecord("x.json", -5, "", nil)
	if got := m.DurationSeconds(); got != 0 {
		t.Errorf("negative duration: want 0, got %d", got)
	}
}

// ---- Sample tests ----

func TestNewSample_PerMinuteRates(t *testing.T) {
	r := makeRecord(map[string]any{
		"TOTAL_DAMAGE_DEALT_TO_CHAMPIONS": float64(18000),
		"MINIONS_KILLED":                  float64(170),
		"NEUTRAL_MINIONS_KILLED":          float64(10),
		"VISION_SCORE":                    float64(30),
	})
	s := NewSample(r, 1800) // 30 minutes
	if math.Abs(s.DamagePerMinute-600) > 1e-9 {
		t.Errorf("DamagePerMinute: want 600, got %f", s.DamagePerMinute)
	}
	if math.Abs(s.CSPerMinute-6) > 1e-9 {
		t.Errorf("CSPerMinute: want 6, got %f", s.CSPerMinute)
	}
	if math.Abs(s.VisionPerMinute-1) > 1e-9 {
		t.Errorf("VisionPerMinute: want 1, got %f", s.VisionPerMinute)
	}
}

func TestNewSample_ZeroDuration(t *testing.T) {
	r := makeRecord(map[string]any{
		"TOTAL_DAMAGE_DEALT_TO_CHAMPIONS": float64(18000),
	})
	s := NewSample(r, 0)
	if s.DamagePerMinute != 0 || s.CSPerMinute != 0 || s.VisionPerMinute != 0 {
		t.Errorf("zero-duration rates: want all 0, got dmg=%f cs=%f vis=%f",
			s.DamagePerMinute, s.CSPerMinute, s.VisionPerMinute)
	}
}
