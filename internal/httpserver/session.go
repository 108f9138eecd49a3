package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/MuraliDhar-731/Hangman/internal/store"
)

// sessionHeader carries a freshly issued token for non-browser clients.
const sessionHeader = "X-Session-Token"

// ctxSessionKey is the context key type for storing *store.Session.
type ctxSessionKey struct{}

// sessionFrom returns the session installed by withSession.
func sessionFrom(ctx context.Context) *store.Session {
	s, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return s
}

// withSession resolves the caller's session from the bearer token or the
// session cookie, creating one when there is none, and injects it into
// the request context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var sess *store.Session
		var issued time.Time

		if tok := s.bearerOrCookie(r); tok != "" {
			if claims, err := s.parseToken(tok); err == nil {
				if found, err := s.store.Get(ctx, claims.Subject); err == nil {
					sess = found
					if claims.IssuedAt != nil {
						issued = claims.IssuedAt.Time
					}
				}
			}
		}

		if sess == nil {
			created, err := s.store.Create(ctx)
			if err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("create session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
			sess = created
			s.metrics.Sessions.Set(float64(s.store.Len()))
			hlog.FromRequest(r).Debug().Str("session", sess.ID).Msg("new session")
		}

		// (Re)issue the token when new or past half its lifetime.
		if issued.IsZero() || s.now().Sub(issued) > s.cfg.SessionTTL/2 {
			if err := s.issueToken(w, sess.ID); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("sign session token")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxSessionKey{}, sess)))
	})
}

// issueToken signs an HS256 token for id and sets the cookie and header.
func (s *Server) issueToken(w http.ResponseWriter, id string) error {
	now := s.now()
	exp := now.Add(s.cfg.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return err
	}
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionCookie,
		Value:    ss,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  exp,
	})
	w.Header().Set(sessionHeader, ss)
	return nil
}

// parseToken verifies signature, algorithm and expiry.
func (s *Server) parseToken(tok string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// bearerOrCookie extracts a bearer token from Authorization header or session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
