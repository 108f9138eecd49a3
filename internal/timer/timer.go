// Package timer measures how long a round took.
package timer

import "time"

// Handle marks the moment a round started.
type Handle struct {
	started time.Time
}

// Started returns the start instant.
func (h Handle) Started() time.Time { return h.started }

// IsZero reports whether h was never started.
func (h Handle) IsZero() bool { return h.started.IsZero() }

// Clock reports the current time.
type Clock func() time.Time

// Timer hands out handles over a Clock.
type Timer struct {
	now Clock
}

// New returns a Timer over now; nil means time.Now.
func New(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// Start returns a handle for the current instant.
func (t *Timer) Start() Handle {
	return Handle{started: t.now()}
}

// Stop returns the minutes elapsed since h. A zero handle or a clock
// that went backwards yields 0.
func (t *Timer) Stop(h Handle) float64 {
	if h.IsZero() {
		return 0
	}
	d := t.now().Sub(h.started)
	if d < 0 {
		return 0
	}
	return d.Minutes()
}
