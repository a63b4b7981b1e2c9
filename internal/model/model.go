package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Team ids as they appear in the source data. Comparisons are on these exact
// strings; numeric 100/200 in a record are canonicalized by the accessor.
const (
	TeamBlue = "100"
	TeamRed  = "200"
)

// Unknown is the fallback for string fields that are absent or empty.
const Unknown = "Unknown"

// Position is the closed set of roles a participant can occupy. The raw data
// uses UTILITY for the support role; both spellings resolve to PositionSupport.
type Position int

const (
	PositionUnknown Position = iota
	PositionTop
	PositionJungle
	PositionMiddle
	PositionBottom
	PositionSupport
)

// ParsePosition resolves a raw position string to its canonical bucket.
// Alias resolution happens here, once, so no comparison site deals with it.
func ParsePosition(s string) Position {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOP":
		return PositionTop
	case "JUNGLE", "JGL":
		return PositionJungle
	case "MIDDLE", "MID":
		return PositionMiddle
	case "BOTTOM", "ADC":
		return PositionBottom
	case "UTILITY", "SUPPORT", "SUP":
		return PositionSupport
	default:
		return PositionUnknown
	}
}

func (p Position) String() string {
	switch p {
	case PositionTop:
		return "TOP"
	case PositionJungle:
		return "JUNGLE"
	case PositionMiddle:
		return "MIDDLE"
	case PositionBottom:
		return "BOTTOM"
	case PositionSupport:
		return "UTILITY"
	default:
		return Unknown
	}
}

// Short returns the display abbreviation used in tables.
func (p Position) Short() string {
	switch p {
	case PositionTop:
		return "TOP"
	case PositionJungle:
		return "JGL"
	case PositionMiddle:
		return "MID"
	case PositionBottom:
		return "ADC"
	case PositionSupport:
		return "SUP"
	default:
		return "?"
	}
}

// AllPositions lists the five canonical roles in draft order.
func AllPositions() []Position {
	return []Position{PositionTop, PositionJungle, PositionMiddle, PositionBottom, PositionSupport}
}

// ParticipantRecord is a read-only view over one participant's raw key-value
// fields for one match. Every getter probes the canonical SCREAMING_SNAKE_CASE
// key first, then the legacy camelCase key, and falls back to a zero value —
// 0 for numerics, "Unknown" for strings. Records are immutable once built.
type ParticipantRecord struct {
	raw map[string]any
}

// NewParticipantRecord wraps one decoded participant object.
func NewParticipantRecord(raw map[string]any) ParticipantRecord {
	return ParticipantRecord{raw: raw}
}

func (r ParticipantRecord) field(canonical, legacy string) (any, bool) {
	if v, ok := r.raw[canonical]; ok {
		return v, true
	}
	if v, ok := r.raw[legacy]; ok {
		return v, true
	}
	return nil, false
}

// textField coerces a field to a string, defaulting to Unknown when the field
// is absent or empty. JSON numbers are rendered without a decimal tail so a
// numeric team id 100 compares equal to "100".
func (r ParticipantRecord) textField(canonical, legacy string) string {
	v, ok := r.field(canonical, legacy)
	if !ok {
		return Unknown
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return Unknown
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return Unknown
}

// intField coerces a field to an int, defaulting to 0 when absent or unparsable.
func (r ParticipantRecord) intField(canonical, legacy string) int {
	v, ok := r.field(canonical, legacy)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	case bool:
		if t {
			return 1
		}
	}
	return 0
}

// Name returns the player's display name as stored in the record.
// Name normalization is the ingestion boundary's job, not the accessor's.
func (r ParticipantRecord) Name() string {
	return r.textField("RIOT_ID_GAME_NAME", "riotIdGameName")
}

// Team returns the participant's team id ("100" or "200").
func (r ParticipantRecord) Team() string {
	return r.textField("TEAM", "team")
}

// Position returns the participant's canonical role bucket.
func (r ParticipantRecord) Position() Position {
	return ParsePosition(r.textField("INDIVIDUAL_POSITION", "individualPosition"))
}

// Champion returns the champion played. The raw data stores it under SKIN.
func (r ParticipantRecord) Champion() string {
	return r.textField("SKIN", "skin")
}

func (r ParticipantRecord) Kills() int {
	return r.intField("CHAMPIONS_KILLED", "championsKilled")
}

func (r ParticipantRecord) Deaths() int {
	return r.intField("NUM_DEATHS", "numDeaths")
}

func (r ParticipantRecord) Assists() int {
	return r.intField("ASSISTS", "assists")
}

// TotalDamage returns total damage dealt to champions.
func (r ParticipantRecord) TotalDamage() int {
	return r.intField("TOTAL_DAMAGE_DEALT_TO_CHAMPIONS", "totalDamageDealtToChampions")
}

// CS returns creep score: lane minions plus neutral monsters.
func (r ParticipantRecord) CS() int {
	minions := r.intField("MINIONS_KILLED", "minionsKilled")
	neutral := r.intField("NEUTRAL_MINIONS_KILLED", "neutralMinionsKilled")
	return minions + neutral
}

func (r ParticipantRecord) VisionScore() int {
	return r.intField("VISION_SCORE", "visionScore")
}

func (r ParticipantRecord) GoldSpent() int {
	return r.intField("GOLD_SPENT", "goldSpent")
}

func (r ParticipantRecord) GoldEarned() int {
	return r.intField("GOLD_EARNED", "goldEarned")
}

func (r ParticipantRecord) Level() int {
	return r.intField("LEVEL", "level")
}

func (r ParticipantRecord) CCTime() int {
	return r.intField("TOTAL_TIME_CROWD_CONTROL_DEALT", "totalTimeCrowdControlDealt")
}

func (r ParticipantRecord) DamageTaken() int {
	return r.intField("TOTAL_DAMAGE_TAKEN", "totalDamageTaken")
}

func (r ParticipantRecord) TotalHeal() int {
	return r.intField("TOTAL_HEAL", "totalHeal")
}

// Win reports whether the participant's side won. Only the fixed truthy set
// {"Win", "1", 1, true} counts; anything else — including "Loss", "0" and a
// missing field — is a loss.
func (r ParticipantRecord) Win() bool {
	v, ok := r.field("WIN", "win")
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "Win" || t == "1"
	case float64:
		return t == 1
	}
	return false
}

// KDA returns (kills + assists) / deaths, or kills + assists on a zero-death
// game. The zero-death fallback makes deathless performances numerically
// indistinguishable from a one-death game with the same K+A; that is a known
// simplification carried from the source data conventions.
func (r ParticipantRecord) KDA() float64 {
	ka := float64(r.Kills() + r.Assists())
	if d := r.Deaths(); d > 0 {
		return ka / float64(d)
	}
	return ka
}

// DamagePerGold returns total damage divided by gold spent, 0 with no gold.
func (r ParticipantRecord) DamagePerGold() float64 {
	gold := r.GoldSpent()
	if gold <= 0 {
		return 0
	}
	return float64(r.TotalDamage()) / float64(gold)
}

// KillParticipation returns the fraction of teamKills the participant was
// involved in, 0 when teamKills is 0.
func (r ParticipantRecord) KillParticipation(teamKills int) float64 {
	if teamKills <= 0 {
		return 0
	}
	return float64(r.Kills()+r.Assists()) / float64(teamKills)
}

// MatchRecord is one match's full data: duration, format version and the
// participant records in source order. Immutable after construction; a match
// built from malformed source simply has no participants, and every derived
// query short-circuits to zero.
type MatchRecord struct {
	file         string
	duration     int // seconds
	version      string
	participants []ParticipantRecord
}

// NewMatchRecord builds a match from already-decoded data. A negative
// duration is clamped to zero.
func NewMatchRecord(file string, durationSeconds int, version string, participants []ParticipantRecord) *MatchRecord {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return &MatchRecord{
		file:         file,
		duration:     durationSeconds,
		version:      version,
		participants: participants,
	}
}

// File returns the source file the match was loaded from.
func (m *MatchRecord) File() string { return m.file }

// Version returns the game format version, or Unknown.
func (m *MatchRecord) Version() string {
	if m.version == "" {
		return Unknown
	}
	return m.version
}

// DurationSeconds returns the match duration in seconds.
func (m *MatchRecord) DurationSeconds() int { return m.duration }

// DurationFormatted renders the duration as minutes:seconds. Seconds are not
// zero-padded ("21:5"), matching the upstream data tooling.
func (m *MatchRecord) DurationFormatted() string {
	return fmt.Sprintf("%d:%d", m.duration/60, m.duration%60)
}

// Participants returns the participant records in source order.
func (m *MatchRecord) Participants() []ParticipantRecord {
	return m.participants
}

// TeamDamage sums damage to champions over participants on the given team.
func (m *MatchRecord) TeamDamage(team string) int {
	total := 0
	for _, p := range m.participants {
		if p.Team() == team {
			total += p.TotalDamage()
		}
	}
	return total
}

// TeamKills sums kills over participants on the given team.
func (m *MatchRecord) TeamKills(team string) int {
	total := 0
	for _, p := range m.participants {
		if p.Team() == team {
			total += p.Kills()
		}
	}
	return total
}

// Sample is one participant's derived per-match statistics, as bucketed by the
// team classifier and pooled by the normalization engine. All numeric fields
// are float64 so averaging is uniform; Champion resolves to the mode when
// samples are averaged.
type Sample struct {
	Kills           float64
	Deaths          float64
	Assists         float64
	Damage          float64
	DamagePerMinute float64
	CS              float64
	CSPerMinute     float64
	VisionScore     float64
	VisionPerMinute float64
	DamagePerGold   float64
	GoldSpent       float64
	Level           float64
	KDA             float64
	Champion        string
}

// NewSample derives a Sample from one participant record and the duration of
// the match it came from. Per-minute rates are 0 for a zero-duration match.
func NewSample(r ParticipantRecord, durationSeconds int) Sample {
	minutes := float64(durationSeconds) / 60
	perMinute := func(v float64) float64 {
		if minutes <= 0 {
			return 0
		}
		return v / minutes
	}
	s := Sample{
		Kills:         float64(r.Kills()),
		Deaths:        float64(r.Deaths()),
		Assists:       float64(r.Assists()),
		Damage:        float64(r.TotalDamage()),
		CS:            float64(r.CS()),
		VisionScore:   float64(r.VisionScore()),
		DamagePerGold: r.DamagePerGold(),
		GoldSpent:     float64(r.GoldSpent()),
		Level:         float64(r.Level()),
		KDA:           r.KDA(),
		Champion:      r.Champion(),
	}
	s.DamagePerMinute = perMinute(s.Damage)
	s.CSPerMinute = perMinute(s.CS)
	s.VisionPerMinute = perMinute(s.VisionScore)
	return s
}
