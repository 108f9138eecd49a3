// Package metrics holds the Prometheus collectors of the game server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the server's collectors.
type Metrics struct {
	RoundsStarted  *prometheus.CounterVec // by difficulty, mode
	RoundsFinished *prometheus.CounterVec // by outcome
	Guesses        *prometheus.CounterVec // by mode, result
	WordFallbacks  *prometheus.CounterVec // by difficulty
	Sessions       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RoundsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hangman",
			Name:      "rounds_started_total",
			Help:      "Rounds started, by difficulty and guess mode.",
		}, []string{"difficulty", "mode"}),
		RoundsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hangman",
			Name:      "rounds_finished_total",
			Help:      "Rounds that reached a terminal outcome.",
		}, []string{"outcome"}),
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hangman",
			Name:      "guesses_total",
			Help:      "Submitted guesses, by mode and result (applied, repeat, invalid).",
		}, []string{"mode", "result"}),
		WordFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hangman",
			Name:      "word_fallbacks_total",
			Help:      "Word selections served from the built-in fallback list.",
		}, []string{"difficulty"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hangman",
			Name:      "sessions",
			Help:      "Live player sessions.",
		}),
	}
	reg.MustRegister(m.RoundsStarted, m.RoundsFinished, m.Guesses, m.WordFallbacks, m.Sessions)
	return m
}
