// Package names is the ingestion boundary for player identity. Source files
// written on Windows machines sometimes carry UTF-8 names that were mis-decoded
// as latin-1 or windows-1252; repair is best-effort and applied exactly once,
// when a name enters the system. Residual mismatches are a data-quality
// limitation, not something to chase per call site.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// FixEncoding repairs mojibake: if the string's code points, re-encoded as
// latin-1 (then windows-1252) bytes, form valid UTF-8, the UTF-8 reading is
// returned. Otherwise the input is returned unchanged.
func FixEncoding(s string) string {
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		raw, err := cm.NewEncoder().String(s)
		if err != nil {
			continue
		}
		if utf8.ValidString(raw) {
			return raw
		}
	}
	return s
}

// Normalize produces the canonical form of a player name used as a map key
// everywhere: mojibake repair followed by Unicode NFC.
func Normalize(s string) string {
	return norm.NFC.String(FixEncoding(s))
}

// StripAccents removes combining marks ("Aezürly" → "Aezurly").
func StripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold returns an accent- and case-insensitive comparison key.
func Fold(s string) string {
	return strings.ToLower(StripAccents(s))
}
