// internal/httpserver/server.go
//
// HTTP server wiring for the Hangman backend.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, access log,
//     JSON, CORS).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Session endpoints (cookie or bearer session token): /game*, /stats*,
//     /leaderboard.
//
// Notes:
//   - Every session owns its round, its stats and its leaderboard; the
//     store keeps them in memory only.
//   - A missing, expired or unknown session token silently starts a new
//     session.

package httpserver

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/MuraliDhar-731/Hangman/internal/config"
	"github.com/MuraliDhar-731/Hangman/internal/metrics"
	"github.com/MuraliDhar-731/Hangman/internal/store"
	"github.com/MuraliDhar-731/Hangman/internal/timer"
	"github.com/MuraliDhar-731/Hangman/internal/words"
)

// Deps are the collaborators of a Server.
type Deps struct {
	Config   config.Config
	Store    store.Store
	Selector *words.Selector
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // served on /metrics; nil hides the endpoint
	Clock    func() time.Time    // nil means time.Now
	Rand     *rand.Rand          // phrase picker; nil means randomly seeded
}

// Server bundles router and session dependencies.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	store    store.Store
	selector *words.Selector
	metrics  *metrics.Metrics
	timer    *timer.Timer
	now      func() time.Time

	rngMu sync.Mutex // guards rng
	rng   *rand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	now := d.Clock
	if now == nil {
		now = time.Now
	}
	m := d.Metrics
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      d.Config,
		store:    d.Store,
		selector: d.Selector,
		metrics:  m,
		timer:    timer.New(now),
		now:      now,
		rng:      rng,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped zerolog logger
	s.r.Use(accessLog())                     // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(defaultJSON)                     // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "hangman-go",
			"endpoints": []string{
				"/health", "POST /game/new", "GET /game", "POST /game/guess", "DELETE /game",
				"GET /stats", "POST /stats/reset", "GET /leaderboard", "POST /leaderboard",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	if d.Gatherer != nil {
		s.r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	// --- session routes ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		s.mountGame(r)
		s.mountScore(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

const contentTypeJSON = "application/json; charset=utf-8"

// defaultJSON marks every response as JSON up front, so writeJSON and the
// JSON 404 need not. promhttp replaces the header on /metrics.
func defaultJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", sessionHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func accessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, dur time.Duration) {
		hlog.FromRequest(r).Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", dur).
			Msg("request")
	})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// phrase picks a cosmetic exclamation under the rng lock.
func (s *Server) phrase(pick func(*rand.Rand) string) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return pick(s.rng)
}
