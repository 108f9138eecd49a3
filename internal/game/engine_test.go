package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRound(t *testing.T, word string, mode Mode, lives int) *State {
	t.Helper()
	s, err := Initialize(word, mode, lives)
	require.NoError(t, err)
	return s
}

func guess(t *testing.T, s *State, g string) bool {
	t.Helper()
	applied, err := s.ApplyGuess(g)
	require.NoError(t, err)
	return applied
}

func TestInitialize(t *testing.T) {
	s := newRound(t, "  Python ", ModeLetter, DefaultMaxLives)
	assert.Equal(t, "python", s.Secret)
	assert.Equal(t, "______", s.Masked())
	assert.Equal(t, 6, s.Lives)
	assert.Equal(t, 6, s.MaxLives)
	assert.Equal(t, OutcomeInProgress, s.Outcome)
	assert.Empty(t, s.Guessed())
	assert.Empty(t, s.LastFeedback)

	_, err := Initialize("   ", ModeLetter, 6)
	assert.ErrorIs(t, err, ErrInvalidWord)
	for _, w := range []string{"ice cream", "tab\tbed", "new\nline"} {
		_, err = Initialize(w, ModeLetter, 6)
		assert.ErrorIs(t, err, ErrInvalidWord, w)
	}
	_, err = Initialize("cat", ModeLetter, 0)
	assert.ErrorIs(t, err, ErrInvalidLives)
	_, err = Initialize("cat", Mode("morse"), 6)
	assert.ErrorIs(t, err, ErrInvalidMode)

	s = newRound(t, "cat", "", 3)
	assert.Equal(t, ModeLetter, s.Mode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeLetter, "Letter": ModeLetter, " WORD ": ModeWord} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("sentence")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestLetterMode_RevealsAllOccurrences(t *testing.T) {
	s := newRound(t, "hello", ModeLetter, 6)
	assert.True(t, guess(t, s, "L"))
	assert.Equal(t, "__ll_", s.Masked())
	assert.Equal(t, 6, s.Lives)
	assert.Equal(t, []string{"l"}, s.Guessed())
	assert.Nil(t, s.LastFeedback)
}

func TestLetterMode_WrongGuessCostsLife(t *testing.T) {
	s := newRound(t, "dog", ModeLetter, 6)
	assert.True(t, guess(t, s, "z"))
	assert.Equal(t, 5, s.Lives)
	assert.Equal(t, "___", s.Masked())
}

func TestLetterMode_WinKeepsLives(t *testing.T) {
	for _, w := range []string{"cat", "book", "xylophone", "microscope", "a"} {
		s := newRound(t, w, ModeLetter, 6)
		guess(t, s, "#") // one miss up front
		seen := map[rune]bool{}
		for _, c := range w {
			if seen[c] {
				continue
			}
			seen[c] = true
			before := s.Lives
			guess(t, s, string(c))
			assert.Equal(t, before, s.Lives, w)
		}
		assert.Equal(t, OutcomeWon, s.Outcome, w)
		assert.Equal(t, w, s.Masked(), w)
		assert.Equal(t, 5, s.Lives, w)
	}
}

func TestLetterMode_LossThenFrozen(t *testing.T) {
	s := newRound(t, "cat", ModeLetter, 3)
	for _, g := range []string{"x", "y", "z"} {
		guess(t, s, g)
	}
	assert.Equal(t, OutcomeLost, s.Outcome)
	assert.Equal(t, 0, s.Lives)

	before := s.Clone()
	assert.False(t, guess(t, s, "c"))
	assert.False(t, guess(t, s, "q"))
	assert.Equal(t, before, s)
}

func TestLetterMode_LastLifeOnFinalMissIsLoss(t *testing.T) {
	s := newRound(t, "ab", ModeLetter, 1)
	guess(t, s, "a")
	guess(t, s, "z")
	assert.Equal(t, OutcomeLost, s.Outcome)
	assert.Equal(t, "a_", s.Masked())
}

func TestLetterMode_RepeatIsNoop(t *testing.T) {
	s := newRound(t, "rocket", ModeLetter, 6)
	guess(t, s, "q")
	guess(t, s, "o")
	before := s.Clone()

	assert.False(t, guess(t, s, "q"))
	assert.False(t, guess(t, s, "O"))
	assert.Equal(t, before, s)
	assert.Equal(t, 5, s.Lives)
}

func TestApplyGuess_InvalidInput(t *testing.T) {
	s := newRound(t, "jungle", ModeLetter, 6)
	before := s.Clone()

	for _, g := range []string{"", "   ", "ab"} {
		applied, err := s.ApplyGuess(g)
		assert.ErrorIs(t, err, ErrInvalidGuess, "%q", g)
		assert.False(t, applied)
	}
	assert.Equal(t, before, s)

	w := newRound(t, "jungle", ModeWord, 6)
	_, err := w.ApplyGuess(" ")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Equal(t, 6, w.Lives)
}

func TestWordMode_ExactMatch(t *testing.T) {
	s := newRound(t, "quantum", ModeWord, 6)
	guess(t, s, "planets")
	lives := s.Lives

	assert.True(t, guess(t, s, "QUANTUM"))
	assert.Equal(t, OutcomeWon, s.Outcome)
	assert.Equal(t, lives, s.Lives)
	assert.Equal(t, "quantum", s.Masked())
	require.Len(t, s.LastFeedback, 7)
	for _, m := range s.LastFeedback {
		assert.Equal(t, MarkHit, m)
	}
}

func TestWordMode_DuplicateLetters(t *testing.T) {
	s := newRound(t, "hello", ModeWord, 6)
	guess(t, s, "floor")

	assert.Equal(t, []Mark{MarkMiss, MarkPresent, MarkPresent, MarkMiss, MarkMiss}, s.LastFeedback)
	assert.Equal(t, "_____", s.Masked())
	assert.Equal(t, 5, s.Lives)
	assert.Equal(t, OutcomeInProgress, s.Outcome)

	again := newRound(t, "hello", ModeWord, 6)
	guess(t, again, "floor")
	assert.Equal(t, s.LastFeedback, again.LastFeedback)
}

func TestWordMode_RevealsOnlyHits(t *testing.T) {
	s := newRound(t, "rocket", ModeWord, 6)
	guess(t, s, "pocket")
	assert.Equal(t, "_ocket", s.Masked())
	assert.Equal(t, []Mark{MarkMiss, MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}, s.LastFeedback)

	guess(t, s, "tocker")
	assert.Equal(t, []Mark{MarkPresent, MarkHit, MarkHit, MarkHit, MarkHit, MarkPresent}, s.LastFeedback)
	assert.Equal(t, "_ocket", s.Masked())
	assert.Equal(t, 4, s.Lives)
}

func TestWordMode_AccumulatedRevealWins(t *testing.T) {
	s := newRound(t, "dog", ModeWord, 6)
	guess(t, s, "dug")
	guess(t, s, "bog")
	assert.Equal(t, "dog", s.Masked())
	assert.Equal(t, OutcomeWon, s.Outcome)
	assert.Equal(t, 4, s.Lives)
}

func TestWordMode_LossBeatsRevealOnLastLife(t *testing.T) {
	s := newRound(t, "dog", ModeWord, 2)
	guess(t, s, "dug")
	guess(t, s, "bog")
	assert.Equal(t, "dog", s.Masked())
	assert.Equal(t, OutcomeLost, s.Outcome)
	assert.Equal(t, 0, s.Lives)
}

func TestWordMode_LengthMismatch(t *testing.T) {
	s := newRound(t, "cat", ModeWord, 6)
	guess(t, s, "cart")
	assert.Equal(t, []Mark{MarkHit, MarkHit, MarkMiss, MarkPresent}, s.LastFeedback)
	assert.Equal(t, "ca_", s.Masked())

	guess(t, s, "t")
	assert.Equal(t, []Mark{MarkPresent}, s.LastFeedback)
	assert.Equal(t, 4, s.Lives)
}

func TestWordMode_RepeatIsNoop(t *testing.T) {
	s := newRound(t, "python", ModeWord, 6)
	guess(t, s, "typhon")
	before := s.Clone()
	assert.False(t, guess(t, s, "Typhon"))
	assert.Equal(t, before, s)
}

func TestWordMode_LossFreezes(t *testing.T) {
	s := newRound(t, "cat", ModeWord, 2)
	guess(t, s, "dog")
	guess(t, s, "cow")
	assert.Equal(t, OutcomeLost, s.Outcome)
	before := s.Clone()
	assert.False(t, guess(t, s, "cat"))
	assert.Equal(t, before, s)
}

func TestScoreGuess(t *testing.T) {
	cases := []struct {
		secret, guess string
		want          []Mark
	}{
		{"hello", "floor", []Mark{MarkMiss, MarkPresent, MarkPresent, MarkMiss, MarkMiss}},
		{"abbey", "babes", []Mark{MarkPresent, MarkPresent, MarkHit, MarkHit, MarkMiss}},
		{"crane", "eerie", []Mark{MarkMiss, MarkMiss, MarkPresent, MarkMiss, MarkHit}},
		{"lolly", "alley", []Mark{MarkMiss, MarkPresent, MarkHit, MarkMiss, MarkHit}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scoreGuess(c.secret, c.guess), "%s/%s", c.secret, c.guess)
	}
}

func TestClone_Independent(t *testing.T) {
	s := newRound(t, "book", ModeWord, 6)
	guess(t, s, "boot")
	c := s.Clone()
	guess(t, c, "book")

	assert.Equal(t, OutcomeInProgress, s.Outcome)
	assert.Equal(t, []string{"boot"}, s.Guessed())
	assert.Equal(t, "boo_", s.Masked())
}

func TestPhrase(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	assert.Contains(t, winPhrases, Phrase(OutcomeWon, rng))
	assert.Contains(t, lossPhrases, Phrase(OutcomeLost, rng))
	assert.Empty(t, Phrase(OutcomeInProgress, rng))

	a := Phrase(OutcomeWon, rand.New(rand.NewPCG(7, 7)))
	b := Phrase(OutcomeWon, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}
