// internal/httpserver/routes_game.go
//
// HTTP routes for playing a round:
//   - POST   /game/new   → start a round (random or daily word)
//   - GET    /game       → current round view
//   - POST   /game/guess → apply one guess; finishes and records the round
//   - DELETE /game       → abandon the round without recording it
//
// A session has at most one round. A terminal round is reported to the
// session's tracker and discarded on the same request.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/MuraliDhar-731/Hangman/internal/daily"
	"github.com/MuraliDhar-731/Hangman/internal/game"
	"github.com/MuraliDhar-731/Hangman/internal/store"
	"github.com/MuraliDhar-731/Hangman/internal/words"
)

var errNoGame = errors.New("no game")

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Get("/", s.handleGetGame)
		r.Post("/guess", s.handleGuess)
		r.Delete("/", s.handleAbandon)
	})
}

// roundView is the client-visible state of a round. Word is only set
// once the round has ended.
type roundView struct {
	RoundID    string       `json:"roundId"`
	Difficulty string       `json:"difficulty"`
	Mode       game.Mode    `json:"mode"`
	Daily      bool         `json:"daily"`
	Masked     string       `json:"masked"`
	Length     int          `json:"length"`
	Guessed    []string     `json:"guessed"`
	Lives      int          `json:"lives"`
	MaxLives   int          `json:"maxLives"`
	Feedback   []game.Mark  `json:"feedback"`
	Outcome    game.Outcome `json:"outcome"`
	Word       string       `json:"word,omitempty"`
}

func viewOf(r *store.Round) roundView {
	st := r.State
	v := roundView{
		RoundID:    r.ID,
		Difficulty: r.Difficulty,
		Mode:       st.Mode,
		Daily:      r.Daily,
		Masked:     st.Masked(),
		Length:     len(st.Revealed),
		Guessed:    append([]string{}, st.Guessed()...),
		Lives:      st.Lives,
		MaxLives:   st.MaxLives,
		Feedback:   append([]game.Mark{}, st.LastFeedback...),
		Outcome:    st.Outcome,
	}
	if st.Finished() {
		v.Word = st.Secret
	}
	return v
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // easy | medium | hard
	Mode       string `json:"mode"`       // letter (default) | word
	MaxLives   int    `json:"maxLives"`   // optional, server default when 0
	Daily      bool   `json:"daily"`      // word of the day for the tier
}

// handleNewGame picks a word, replaces any running round and starts its timer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = string(words.Easy)
	}
	diff, err := words.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_difficulty")
		return
	}
	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_mode")
		return
	}
	lives := req.MaxLives
	if lives == 0 {
		lives = s.cfg.MaxLives
	}

	var word string
	if req.Daily {
		word, err = s.selector.SelectSeeded(r.Context(), string(diff), daily.Seed(s.now(), s.cfg.DailySalt, string(diff)))
	} else {
		word, err = s.selector.Select(r.Context(), string(diff))
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("select word")
		writeError(w, http.StatusInternalServerError, "select_failed")
		return
	}

	st, err := game.Initialize(word, mode, lives)
	if err != nil {
		if errors.Is(err, game.ErrInvalidLives) {
			writeError(w, http.StatusBadRequest, "invalid_lives")
			return
		}
		hlog.FromRequest(r).Error().Err(err).Str("difficulty", string(diff)).Msg("initialize round")
		writeError(w, http.StatusInternalServerError, "init_failed")
		return
	}

	round := &store.Round{
		ID:         uuid.NewString(),
		Difficulty: string(diff),
		Daily:      req.Daily,
		State:      st,
		Started:    s.timer.Start(),
	}
	sess := sessionFrom(r.Context())
	var view roundView
	sess.Do(s.now(), func(ss *store.Session) {
		if ss.Round != nil {
			hlog.FromRequest(r).Debug().Str("round", ss.Round.ID).Msg("abandoning running round")
		}
		ss.Round = round
		view = viewOf(round)
	})
	s.metrics.RoundsStarted.WithLabelValues(string(diff), string(mode)).Inc()
	hlog.FromRequest(r).Info().
		Str("session", sess.ID).
		Str("round", round.ID).
		Str("difficulty", string(diff)).
		Str("mode", string(mode)).
		Bool("daily", req.Daily).
		Msg("round started")

	writeJSON(w, http.StatusCreated, view)
}

// handleGetGame returns the running round.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var view roundView
	err := sessionFrom(r.Context()).Update(s.now(), func(ss *store.Session) error {
		if ss.Round == nil {
			return errNoGame
		}
		view = viewOf(ss.Round)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "no_game")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

type roundResult struct {
	Outcome             game.Outcome `json:"outcome"`
	Word                string       `json:"word"`
	DurationSeconds     float64      `json:"durationSeconds"`
	Phrase              string       `json:"phrase"`
	LeaderboardEligible bool         `json:"leaderboardEligible"`
}

type guessRes struct {
	Applied bool         `json:"applied"` // false for a repeat or a finished round
	Round   roundView    `json:"round"`
	Result  *roundResult `json:"result,omitempty"`
}

// handleGuess applies a guess; a terminal round stops the timer, is
// recorded in the tracker and is dropped from the session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	sess := sessionFrom(r.Context())
	var res guessRes
	var mode game.Mode
	err := sess.Update(s.now(), func(ss *store.Session) error {
		if ss.Round == nil {
			return errNoGame
		}
		round := ss.Round
		mode = round.State.Mode
		applied, err := round.State.ApplyGuess(req.Guess)
		if err != nil {
			return err
		}
		res.Applied = applied
		res.Round = viewOf(round)

		if !round.State.Finished() {
			return nil
		}
		secs := s.timer.Stop(round.Started) * 60
		outcome := round.State.Outcome
		if err := ss.Tracker.RecordOutcome(outcome, secs); err != nil {
			return err
		}
		res.Result = &roundResult{
			Outcome:             outcome,
			Word:                round.State.Secret,
			DurationSeconds:     secs,
			Phrase:              s.phrase(func(rng *rand.Rand) string { return game.Phrase(outcome, rng) }),
			LeaderboardEligible: outcome == game.OutcomeWon,
		}
		ss.Round = nil
		return nil
	})

	switch {
	case errors.Is(err, errNoGame):
		writeError(w, http.StatusNotFound, "no_game")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		s.metrics.Guesses.WithLabelValues(string(mode), "invalid").Inc()
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	result := "applied"
	if !res.Applied {
		result = "repeat"
	}
	s.metrics.Guesses.WithLabelValues(string(mode), result).Inc()
	if res.Result != nil {
		s.metrics.RoundsFinished.WithLabelValues(string(res.Result.Outcome)).Inc()
		hlog.FromRequest(r).Info().
			Str("session", sess.ID).
			Str("round", res.Round.RoundID).
			Str("outcome", string(res.Result.Outcome)).
			Float64("seconds", res.Result.DurationSeconds).
			Msg("round finished")
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAbandon drops the running round; nothing is recorded.
func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	err := sessionFrom(r.Context()).Update(s.now(), func(ss *store.Session) error {
		if ss.Round == nil {
			return errNoGame
		}
		ss.Round = nil
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "no_game")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
