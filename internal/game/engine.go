// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create new rounds with every position masked.
//   - Validate and apply guesses in letter mode or full-word mode.
//   - Score full-word guesses using the two-pass Wordle algorithm.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Secrets come from the words package; the engine never picks one.
//   - A repeated token and any call after the round ended are no-ops.
package game

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidWord is returned by Initialize for an empty secret or one
	// containing whitespace.
	ErrInvalidWord = errors.New("invalid word")
	// ErrInvalidLives is returned by Initialize when maxLives < 1.
	ErrInvalidLives = errors.New("invalid lives")
	// ErrInvalidGuess is returned by ApplyGuess for empty input, or more
	// than one character in letter mode. The state is left untouched.
	ErrInvalidGuess = errors.New("invalid guess")
)

// Initialize constructs a fresh round for word.
// The word is trimmed and stored lowercase; every position starts masked.
// Inner whitespace is rejected because a blank guess is never accepted.
func Initialize(word string, mode Mode, maxLives int) (*State, error) {
	secret := strings.ToLower(strings.TrimSpace(word))
	if secret == "" || strings.ContainsFunc(secret, unicode.IsSpace) {
		return nil, ErrInvalidWord
	}
	if maxLives < 1 {
		return nil, ErrInvalidLives
	}
	if mode == "" {
		mode = ModeLetter
	}
	if mode != ModeLetter && mode != ModeWord {
		return nil, ErrInvalidMode
	}

	revealed := make([]rune, utf8.RuneCountInString(secret))
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return &State{
		Mode:     mode,
		Secret:   secret,
		Revealed: revealed,
		Lives:    maxLives,
		MaxLives: maxLives,
		Outcome:  OutcomeInProgress,
		seen:     make(map[string]struct{}),
	}, nil
}

// ApplyGuess validates a guess and applies it to the round.
// Returns applied=false without error when the round is already over or
// the token was submitted before; the state is not touched in that case.
//
// Letter mode:
//   - Reveal every matching position, or lose one life on a miss.
//   - Win when nothing is masked, else lose when lives hit zero.
//
// Full-word mode:
//   - An exact match reveals everything and wins without costing a life.
//   - Otherwise score the guess, reveal exact-position matches only and
//     lose one life. Loss is checked before a win by accumulated reveals.
func (s *State) ApplyGuess(guess string) (bool, error) {
	if s.Finished() {
		return false, nil
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return false, ErrInvalidGuess
	}
	if s.Mode != ModeWord && utf8.RuneCountInString(guess) != 1 {
		return false, ErrInvalidGuess
	}
	if _, dup := s.seen[guess]; dup {
		return false, nil
	}

	s.record(guess)
	if s.Mode == ModeWord {
		s.applyWord(guess)
	} else {
		s.applyLetter([]rune(guess)[0])
	}
	return true, nil
}

func (s *State) record(token string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.guessed = append(s.guessed, token)
	s.seen[token] = struct{}{}
}

// applyLetter reveals ch or costs a life, then checks win before loss.
func (s *State) applyLetter(ch rune) {
	hit := false
	for i, c := range []rune(s.Secret) {
		if c == ch {
			s.Revealed[i] = c
			hit = true
		}
	}
	if !hit {
		s.loseLife()
	}

	switch {
	case !s.masked():
		s.Outcome = OutcomeWon
	case s.Lives <= 0:
		s.Outcome = OutcomeLost
	}
}

// applyWord handles a full-word guess.
func (s *State) applyWord(guess string) {
	if guess == s.Secret {
		s.Revealed = []rune(s.Secret)
		s.LastFeedback = make([]Mark, len(s.Revealed))
		for i := range s.LastFeedback {
			s.LastFeedback[i] = MarkHit
		}
		s.Outcome = OutcomeWon
		return
	}

	sec := []rune(s.Secret)
	marks := scoreGuess(s.Secret, guess)
	for i, m := range marks {
		if m == MarkHit {
			s.Revealed[i] = sec[i]
		}
	}
	s.LastFeedback = marks
	s.loseLife()

	switch {
	case s.Lives <= 0:
		s.Outcome = OutcomeLost
	case string(s.Revealed) == s.Secret:
		s.Outcome = OutcomeWon
	}
}

func (s *State) loseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// masked reports whether any position is still hidden.
func (s *State) masked() bool {
	return string(s.Revealed) != s.Secret
}

// scoreGuess implements the two-pass Wordle scoring algorithm.
// The result has one mark per guess rune; guess and secret may differ
// in length.
//
// Pass 1:
//   - Mark exact matches (up to the shorter length) as Hit and consume
//     that secret position.
//
// Pass 2:
//   - For each non-hit guess rune, consume the left-most unconsumed
//     secret position holding the same rune and mark Present; otherwise
//     mark Miss.
//
// Repeated letters are therefore never credited more often than they
// remain available in the secret.
func scoreGuess(secret, guess string) []Mark {
	sec := []rune(secret)
	g := []rune(guess)
	res := make([]Mark, len(g))
	used := make([]bool, len(sec))

	for i := 0; i < len(g) && i < len(sec); i++ {
		if g[i] == sec[i] {
			res[i] = MarkHit
			used[i] = true
		}
	}

	for i := range g {
		if res[i] == MarkHit {
			continue
		}
		res[i] = MarkMiss
		for j := range sec {
			if !used[j] && sec[j] == g[i] {
				res[i] = MarkPresent
				used[j] = true
				break
			}
		}
	}
	return res
}
