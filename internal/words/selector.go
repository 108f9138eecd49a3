package words

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog/log"
)

// Selector draws a word for a tier from a Source, falling back to the
// built-in lists whenever the source cannot serve the tier.
type Selector struct {
	src        Source
	onFallback func(Difficulty, error)

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option customises a Selector.
type Option func(*Selector)

// WithFallbackHook registers fn to be called every time the fallback
// list is used. The error is the source failure that caused it.
func WithFallbackHook(fn func(Difficulty, error)) Option {
	return func(s *Selector) { s.onFallback = fn }
}

// NewSelector builds a Selector over src. A nil src always falls back.
// A nil rng is replaced with a randomly seeded generator.
func NewSelector(src Source, rng *rand.Rand, opts ...Option) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Selector{src: src, rng: rng}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Select returns a uniformly random word for difficulty.
// Only an unrecognised tier is reported; source failures are absorbed.
func (s *Selector) Select(ctx context.Context, difficulty string) (string, error) {
	pool, err := s.pool(ctx, difficulty)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	i := s.rng.IntN(len(pool))
	s.mu.Unlock()
	return pool[i], nil
}

// SelectSeeded returns the word at seed modulo the tier's pool, so equal
// seeds over an unchanged table give equal words.
func (s *Selector) SelectSeeded(ctx context.Context, difficulty string, seed uint64) (string, error) {
	pool, err := s.pool(ctx, difficulty)
	if err != nil {
		return "", err
	}
	return pool[seed%uint64(len(pool))], nil
}

// pool resolves the candidate list for a tier.
func (s *Selector) pool(ctx context.Context, difficulty string) ([]string, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	if s.src == nil {
		s.fellBack(d, ErrWordSourceUnavailable)
		return fallback[d], nil
	}
	list, err := s.src.Words(ctx, d)
	if err == nil && len(list) == 0 {
		err = ErrWordSourceUnavailable
	}
	if err != nil {
		s.fellBack(d, err)
		return fallback[d], nil
	}
	return list, nil
}

func (s *Selector) fellBack(d Difficulty, err error) {
	log.Debug().Err(err).Str("difficulty", string(d)).Msg("using fallback word list")
	if s.onFallback != nil {
		s.onFallback(d, err)
	}
}
