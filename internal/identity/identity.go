// Package identity provides anonymous per-device identity primitives.
// There are no accounts: a device gets a random cookie id, a learner row is
// ensured on first touch, and progress/attempts hang off that id.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/store"
)

const (
	AnonCookieName        = "adp_anon_id"
	SessionHeaderName     = "X-ADP-Session-ID"
	DefaultSessionIDValue = "default"
	anonCookieMaxAge      = 30 * 24 * time.Hour
)

type contextKey int

const (
	learnerIDKey contextKey = iota
	nicknameKey
	sessionIDKey
)

var (
	anonIDPattern    = regexp.MustCompile(`^anon_[a-f0-9]{32}$`)
	sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)
)

// LearnerIDFromContext extracts the learner ID from the request context.
func LearnerIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(learnerIDKey).(string); ok {
		return v
	}
	return ""
}

// NicknameFromContext extracts the display nickname from the request context.
func NicknameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(nicknameKey).(string); ok {
		return v
	}
	return ""
}

// SessionIDFromContext extracts the tab session ID from the request context.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return DefaultSessionIDValue
}

func generateAnonID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate anonymous id: %w", err)
	}
	return "anon_" + hex.EncodeToString(buf), nil
}

func isValidAnonID(id string) bool {
	return anonIDPattern.MatchString(id)
}

func sanitizeSessionID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || !sessionIDPattern.MatchString(id) {
		return DefaultSessionIDValue
	}
	return id
}

func deriveNickname(learnerID string) string {
	if len(learnerID) > 13 {
		return "reader-" + learnerID[len(learnerID)-8:]
	}
	return "reader"
}

func ensureLearner(ctx context.Context, repo store.Repository, learnerID string) error {
	learner, err := repo.GetLearner(ctx, learnerID)
	if err != nil {
		return err
	}
	if learner != nil {
		return nil
	}

	now := time.Now()
	return repo.UpsertLearner(ctx, &domain.Learner{
		LearnerID:  learnerID,
		Nickname:   deriveNickname(learnerID),
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func getOrCreateAnonID(w http.ResponseWriter, r *http.Request, isDev bool) (string, error) {
	if c, err := r.Cookie(AnonCookieName); err == nil && isValidAnonID(c.Value) {
		setAnonCookie(w, c.Value, isDev)
		return c.Value, nil
	}

	id, err := generateAnonID()
	if err != nil {
		return "", err
	}

	setAnonCookie(w, id, isDev)
	return id, nil
}

func setAnonCookie(w http.ResponseWriter, id string, isDev bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AnonCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(anonCookieMaxAge.Seconds()),
		Expires:  time.Now().Add(anonCookieMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !isDev,
	})
}

func sessionIDFromRequest(r *http.Request) string {
	sid := r.Header.Get(SessionHeaderName)
	if sid == "" {
		sid = r.URL.Query().Get("session_id")
	}
	return sanitizeSessionID(sid)
}

// Middleware injects anonymous per-device identity and per-tab session ID.
func Middleware(repo store.Repository, isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			learnerID, err := getOrCreateAnonID(w, r, isDev)
			if err != nil {
				http.Error(w, `{"error":"failed to establish anonymous identity"}`, http.StatusInternalServerError)
				return
			}

			if err := ensureLearner(r.Context(), repo, learnerID); err != nil {
				http.Error(w, `{"error":"failed to initialize anonymous learner"}`, http.StatusInternalServerError)
				return
			}

			nickname := deriveNickname(learnerID)
			sessionID := sessionIDFromRequest(r)

			ctx := context.WithValue(r.Context(), learnerIDKey, learnerID)
			ctx = context.WithValue(ctx, nicknameKey, nickname)
			ctx = context.WithValue(ctx, sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IPFromRequest returns a normalized remote IP for optional request tracing.
func IPFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
