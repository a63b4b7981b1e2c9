// Package loader reads a corpus of match files from a directory. Each file is
// one JSON object per match with a "participants" array of flat key-value
// maps. Files are decoded independently: a malformed or unreadable file is
// logged and skipped, never aborting the scan.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"

	"github.com/aezurly/go-lol-metrics/internal/model"
)

// ErrNoMatches is returned when the corpus directory exists but contains no
// .json files. Distinct from a missing directory (os.ErrNotExist) and from a
// successful scan that found no players.
var ErrNoMatches = errors.New("no match files found")

// rawMatch mirrors the top-level shape of one match file. gameDuration is in
// milliseconds. Participant fields stay untyped: the record accessor owns the
// canonical/legacy key fallback and coercion rules.
type rawMatch struct {
	GameDuration int64            `json:"gameDuration"`
	GameVersion  string           `json:"gameVersion"`
	Participants []map[string]any `json:"participants"`
}

// LoadCorpus loads every .json file under dir, in filename order. It returns
// the loaded matches and the number of files skipped as unreadable. Files are
// decoded concurrently; each slot is written by exactly one goroutine and the
// caller consumes the merged slice serially.
func LoadCorpus(dir string) ([]*model.MatchRecord, int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("corpus directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("corpus path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read corpus directory %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, 0, fmt.Errorf("%w in %q", ErrNoMatches, dir)
	}
	sort.Strings(files)

	results := make([]*model.MatchRecord, len(files))
	var wg conc.WaitGroup
	for i, name := range files {
		i, name := i, name // per-iteration copies: loop variables are shared before go 1.22
		wg.Go(func() {
			m, err := loadFile(filepath.Join(dir, name))
			if err != nil {
				logrus.WithField("file", name).WithError(err).Warn("skipping match file")
				return
			}
			results[i] = m
		})
	}
	wg.Wait()

	matches := make([]*model.MatchRecord, 0, len(files))
	for _, m := range results {
		if m != nil {
			matches = append(matches, m)
		}
	}
	skipped := len(files) - len(matches)
	if skipped > 0 {
		logrus.WithFields(logrus.Fields{"loaded": len(matches), "skipped": skipped}).
			Warn("corpus loaded with skipped files")
	}
	return matches, skipped, nil
}

// loadFile decodes one match file into a MatchRecord.
func loadFile(path string) (*model.MatchRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var raw rawMatch
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	participants := make([]model.ParticipantRecord, 0, len(raw.Participants))
	for _, p := range raw.Participants {
		participants = append(participants, model.NewParticipantRecord(p))
	}
	duration := int(raw.GameDuration / 1000) // milliseconds → seconds
	return model.NewMatchRecord(filepath.Base(path), duration, raw.GameVersion, participants), nil
}
