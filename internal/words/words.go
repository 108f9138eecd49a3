// internal/words/words.go
//
// Difficulty tiers and the built-in fallback lists.
//
// Tiers:
//   - easy:   short, common words.
//   - medium: everyday six-letter words.
//   - hard:   long or technical words.
//
// The fallback lists are used whenever the configured word table cannot
// serve a tier. They are disjoint by content, not by an enforced length.

package words

import (
	"errors"
	"strings"
	"unicode"
)

// Difficulty is one of the three recognised tiers.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var (
	// ErrInvalidDifficulty is surfaced for tiers outside easy/medium/hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrWordSourceUnavailable marks a word table that could not serve a
	// request. Selector recovers from it with the fallback list.
	ErrWordSourceUnavailable = errors.New("word source unavailable")
)

var fallback = map[Difficulty][]string{
	Easy:   {"cat", "book", "dog"},
	Medium: {"python", "jungle", "rocket"},
	Hard:   {"xylophone", "microscope", "quantum"},
}

// Difficulties lists the tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a user-supplied tier name onto a Difficulty.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := fallback[d]; !ok {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// Fallback returns a copy of the built-in list for d.
func Fallback(d Difficulty) []string {
	return append([]string(nil), fallback[d]...)
}

// normalize lowercases and trims w. It reports false for blank entries
// and for phrases, since a space can never be guessed.
func normalize(w string) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	return w, w != "" && !strings.ContainsFunc(w, unicode.IsSpace)
}
