// internal/score/tracker.go
//
// Running statistics and the local leaderboard for one player session.
// Responsibilities:
//   - Aggregate finished rounds into wins/losses/streak/best time.
//   - Keep the five fastest wins, ascending by duration.
//   - Reset both on request.
//
// A Tracker is owned by a single session and is not safe for concurrent
// use; the session store serialises access.

package score

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MuraliDhar-731/Hangman/internal/game"
)

const (
	// LeaderboardSize is the number of entries kept.
	LeaderboardSize = 5
	// MaxNameLength bounds leaderboard names, counted in characters.
	MaxNameLength = 20
)

var (
	// ErrNotFinished is returned when an in-progress outcome is recorded.
	ErrNotFinished = errors.New("round not finished")
	// ErrNoWin is returned when no recorded win awaits a leaderboard entry.
	ErrNoWin = errors.New("no win to submit")
	// ErrInvalidName is returned for blank or over-long names.
	ErrInvalidName = errors.New("invalid name")
)

// Aggregate is the running totals of a session.
type Aggregate struct {
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	GamesPlayed   int      `json:"gamesPlayed"`
	CurrentStreak int      `json:"currentStreak"`
	BestTime      *float64 `json:"bestTime,omitempty"` // seconds, fastest win
}

// Entry is one leaderboard row.
type Entry struct {
	Name            string    `json:"name"`
	DurationSeconds float64   `json:"durationSeconds"`
	Timestamp       time.Time `json:"timestamp"`
}

// Tracker records outcomes and leaderboard entries.
type Tracker struct {
	agg     Aggregate
	board   []Entry
	pending *float64 // duration of the latest unsubmitted win
	now     func() time.Time
}

// NewTracker returns an empty Tracker stamping entries with now
// (time.Now when nil).
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// RecordOutcome folds a finished round into the totals.
// A win extends the streak, may improve the best time and becomes
// eligible for the leaderboard; a loss resets the streak.
func (t *Tracker) RecordOutcome(o game.Outcome, durationSeconds float64) error {
	switch o {
	case game.OutcomeWon:
		t.agg.Wins++
		t.agg.CurrentStreak++
		if t.agg.BestTime == nil || durationSeconds < *t.agg.BestTime {
			best := durationSeconds
			t.agg.BestTime = &best
		}
		d := durationSeconds
		t.pending = &d
	case game.OutcomeLost:
		t.agg.Losses++
		t.agg.CurrentStreak = 0
		t.pending = nil
	default:
		return ErrNotFinished
	}
	t.agg.GamesPlayed = t.agg.Wins + t.agg.Losses
	return nil
}

// Reset zeroes the totals, the best time and the leaderboard.
func (t *Tracker) Reset() {
	t.agg = Aggregate{}
	t.board = nil
	t.pending = nil
}

// SubmitLeaderboardEntry adds name with durationSeconds after a win,
// keeping the LeaderboardSize fastest entries. Names need not be unique.
func (t *Tracker) SubmitLeaderboardEntry(name string, durationSeconds float64) error {
	if t.pending == nil {
		return ErrNoWin
	}
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}

	t.board = append(t.board, Entry{
		Name:            name,
		DurationSeconds: durationSeconds,
		Timestamp:       t.now(),
	})
	sort.SliceStable(t.board, func(i, j int) bool {
		return t.board[i].DurationSeconds < t.board[j].DurationSeconds
	})
	if len(t.board) > LeaderboardSize {
		t.board = t.board[:LeaderboardSize]
	}
	t.pending = nil
	return nil
}

// PendingWin returns the duration of a win that can still be submitted.
func (t *Tracker) PendingWin() (float64, bool) {
	if t.pending == nil {
		return 0, false
	}
	return *t.pending, true
}

// Aggregate returns a copy of the totals.
func (t *Tracker) Aggregate() Aggregate {
	a := t.agg
	if a.BestTime != nil {
		best := *a.BestTime
		a.BestTime = &best
	}
	return a
}

// Leaderboard returns a copy of the entries, fastest first.
func (t *Tracker) Leaderboard() []Entry {
	return append([]Entry{}, t.board...)
}
