package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/MuraliDhar-731/Hangman/internal/score"
	"github.com/MuraliDhar-731/Hangman/internal/store"
)

// mountScore registers the stats dashboard and leaderboard routes.
func (s *Server) mountScore(r chi.Router) {
	r.Get("/stats", s.handleStats)
	r.Post("/stats/reset", s.handleReset)
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Post("/leaderboard", s.handleSubmitEntry)
}

type statsRes struct {
	score.Aggregate
	PendingWin *float64 `json:"pendingWin,omitempty"` // seconds of a win not yet on the board
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var res statsRes
	sessionFrom(r.Context()).Do(s.now(), func(ss *store.Session) {
		res.Aggregate = ss.Tracker.Aggregate()
		if d, ok := ss.Tracker.PendingWin(); ok {
			res.PendingWin = &d
		}
	})
	writeJSON(w, http.StatusOK, res)
}

// handleReset zeroes stats and clears the leaderboard.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sess.Do(s.now(), func(ss *store.Session) {
		ss.Tracker.Reset()
	})
	hlog.FromRequest(r).Info().Str("session", sess.ID).Msg("stats reset")
	writeJSON(w, http.StatusOK, statsRes{})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	var entries []score.Entry
	sessionFrom(r.Context()).Do(s.now(), func(ss *store.Session) {
		entries = ss.Tracker.Leaderboard()
	})
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

type submitReq struct {
	Name string `json:"name"`
}

// handleSubmitEntry puts the latest unsubmitted win on the leaderboard.
func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var entries []score.Entry
	err := sessionFrom(r.Context()).Update(s.now(), func(ss *store.Session) error {
		d, ok := ss.Tracker.PendingWin()
		if !ok {
			return score.ErrNoWin
		}
		if err := ss.Tracker.SubmitLeaderboardEntry(req.Name, d); err != nil {
			return err
		}
		entries = ss.Tracker.Leaderboard()
		return nil
	})
	switch {
	case errors.Is(err, score.ErrNoWin):
		writeError(w, http.StatusConflict, "no_win")
		return
	case errors.Is(err, score.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "invalid_name")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("submit leaderboard entry")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entries": entries})
}
