// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mode: letter-by-letter (hangman) or full-word (wordle) guessing.
//   - Mark: per-position result of a full-word guess (hit/present/miss).
//   - Outcome: round status (in_progress → won | lost).
//   - State: the mutable record of one round.

package game

import (
	"errors"
	"strings"
)

// DefaultMaxLives is the number of lives a round starts with unless the
// caller asks for something else.
const DefaultMaxLives = 6

// Placeholder marks a position of the secret that has not been revealed.
const Placeholder = '_'

// Mode selects how ApplyGuess interprets a submission.
type Mode string

const (
	ModeLetter Mode = "letter" // one character per guess
	ModeWord   Mode = "word"   // whole-word guess with positional feedback
)

// ErrInvalidMode is returned by ParseMode for anything but letter/word.
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode maps a user-supplied string onto a Mode.
// Matching is case-insensitive; an empty string means ModeLetter.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeLetter):
		return ModeLetter, nil
	case string(ModeWord):
		return ModeWord, nil
	}
	return "", ErrInvalidMode
}

// Mark represents the evaluation result for a single position of a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists among the unmatched secret letters.
//   - "miss":    letter is not available anywhere else in the secret.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Outcome is the status of a round. Won and Lost are terminal.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Terminal reports whether o is Won or Lost.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// State holds a single round. It is created by Initialize and only
// mutated by ApplyGuess.
type State struct {
	Mode         Mode    // guess interpretation, fixed for the round
	Secret       string  // the solution word (always lowercase)
	Revealed     []rune  // same length as Secret; Placeholder where masked
	Lives        int     // remaining lives, never negative
	MaxLives     int     // lives at the start of the round
	LastFeedback []Mark  // marks of the latest full-word guess
	Outcome      Outcome // in_progress until won or lost

	guessed []string            // submitted tokens in order
	seen    map[string]struct{} // set view of guessed
}

// Guessed returns the submitted tokens in the order they were made.
func (s *State) Guessed() []string {
	return append([]string(nil), s.guessed...)
}

// Masked returns the revealed positions as a string, e.g. "_e__o".
func (s *State) Masked() string {
	return string(s.Revealed)
}

// Finished reports whether the round reached a terminal outcome.
func (s *State) Finished() bool {
	return s.Outcome.Terminal()
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Revealed = append([]rune(nil), s.Revealed...)
	c.guessed = append([]string(nil), s.guessed...)
	if s.LastFeedback != nil {
		c.LastFeedback = make([]Mark, len(s.LastFeedback))
		copy(c.LastFeedback, s.LastFeedback)
	}
	c.seen = make(map[string]struct{}, len(s.seen))
	for k := range s.seen {
		c.seen[k] = struct{}{}
	}
	return &c
}
