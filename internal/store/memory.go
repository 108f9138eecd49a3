// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Each player session owns its current round, its score tracker and the
// timer handle of the running round; nothing is shared between sessions.
//
// Characteristics:
//   - Sessions keyed by a random UUID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Per-session mutex so one session applies one transition at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MuraliDhar-731/Hangman/internal/game"
	"github.com/MuraliDhar-731/Hangman/internal/score"
	"github.com/MuraliDhar-731/Hangman/internal/timer"
)

// ErrNotFound is returned by Get for unknown or swept sessions.
var ErrNotFound = errors.New("session not found")

// Round is the controller-side record of the active round.
type Round struct {
	ID         string
	Difficulty string
	Daily      bool
	State      *game.State
	Started    timer.Handle
}

// Session is the isolated state of one player.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	lastSeen atomic.Int64   // unix nanos
	Round    *Round         // nil between rounds
	Tracker  *score.Tracker // wins, streak, leaderboard
}

// Update runs fn while holding the session lock and marks the session
// as recently used. fn must not retain s beyond the call.
func (s *Session) Update(now time.Time, fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen.Store(now.UnixNano())
	return fn(s)
}

// Do is Update for transitions that cannot fail.
func (s *Session) Do(now time.Time, fn func(s *Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen.Store(now.UnixNano())
	fn(s)
}

// LastSeen returns the time of the latest Update (or creation).
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Store defines the persistence interface for sessions.
type Store interface {
	// Create registers a new, empty session.
	Create(ctx context.Context) (*Session, error)

	// Get retrieves a session by ID.
	// Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete drops a session; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle for longer than idle and reports how many.
	Sweep(ctx context.Context, idle time.Duration) int

	// Len reports the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store using now as its clock
// (time.Now when nil).
func NewMemoryStore(now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	return &memory{sessions: make(map[string]*Session), now: now}
}

// Create adds a fresh session with its own tracker.
func (m *memory) Create(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := m.now()
	s := &Session{
		ID:      uuid.NewString(),
		Created: t,
		Tracker: score.NewTracker(m.now),
	}
	s.lastSeen.Store(t.UnixNano())
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete removes a session.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Sweep removes sessions whose last use is older than idle.
func (m *memory) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
// onSweep, when set, receives the number of dropped sessions.
func RunSweeper(ctx context.Context, st Store, interval, idle time.Duration, onSweep func(int)) {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			if n := st.Sweep(ctx, idle); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
