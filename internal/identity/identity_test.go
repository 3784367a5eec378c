package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
)

// memRepo implements the store.Repository methods the middleware touches.
type memRepo struct {
	learners map[string]*domain.Learner
}

func newMemRepo() *memRepo {
	return &memRepo{learners: make(map[string]*domain.Learner)}
}

func (m *memRepo) GetLearner(_ context.Context, learnerID string) (*domain.Learner, error) {
	return m.learners[learnerID], nil
}

func (m *memRepo) UpsertLearner(_ context.Context, learner *domain.Learner) error {
	m.learners[learner.LearnerID] = learner
	return nil
}

func (m *memRepo) UpdateLastSeen(_ context.Context, learnerID string, lastSeen time.Time) error {
	if l, ok := m.learners[learnerID]; ok {
		l.LastSeenAt = lastSeen
	}
	return nil
}

func (m *memRepo) InsertQuizAttempt(_ context.Context, _ *domain.QuizAttempt) error { return nil }

func (m *memRepo) ListQuizAttempts(_ context.Context, _ string, _, _ int) ([]*domain.QuizAttempt, error) {
	return nil, nil
}

func (m *memRepo) UpsertProgress(_ context.Context, _ *domain.ReadingProgress) error { return nil }

func (m *memRepo) ListProgress(_ context.Context, _ string) ([]*domain.ReadingProgress, error) {
	return nil, nil
}

func (m *memRepo) CleanupStaleLearners(_ context.Context, _ time.Duration) (int64, error) {
	return 0, nil
}

func (m *memRepo) Ping(_ context.Context) error { return nil }
func (m *memRepo) Close() error                 { return nil }

func TestMiddlewareAssignsAnonID(t *testing.T) {
	repo := newMemRepo()
	var capturedID string
	handler := Middleware(repo, true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = LearnerIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chapters", nil))

	if !isValidAnonID(capturedID) {
		t.Fatalf("Expected a valid anon id in context, got %q", capturedID)
	}
	if _, ok := repo.learners[capturedID]; !ok {
		t.Error("Expected learner row created on first touch")
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == AnonCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Expected anon cookie to be set")
	}
	if cookie.Value != capturedID {
		t.Errorf("Cookie %q does not match context id %q", cookie.Value, capturedID)
	}
	if !cookie.HttpOnly {
		t.Error("Expected HttpOnly cookie")
	}
	if cookie.Secure {
		t.Error("Expected non-secure cookie in dev mode")
	}
}

func TestMiddlewareReusesValidCookie(t *testing.T) {
	repo := newMemRepo()
	existing := "anon_0123456789abcdef0123456789abcdef"

	var capturedID string
	handler := Middleware(repo, true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = LearnerIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AnonCookieName, Value: existing})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if capturedID != existing {
		t.Errorf("Expected existing id reused, got %q", capturedID)
	}
}

func TestMiddlewareRejectsMalformedCookie(t *testing.T) {
	repo := newMemRepo()
	var capturedID string
	handler := Middleware(repo, true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = LearnerIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AnonCookieName, Value: "anon_../../etc/passwd"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if capturedID == "anon_../../etc/passwd" {
		t.Error("Expected malformed cookie to be replaced")
	}
	if !isValidAnonID(capturedID) {
		t.Errorf("Expected a fresh valid id, got %q", capturedID)
	}
}

func TestSessionIDFromRequest(t *testing.T) {
	var capturedSID string
	handler := Middleware(newMemRepo(), true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedSID = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeaderName, "tab-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if capturedSID != "tab-42" {
		t.Errorf("Expected session id from header, got %q", capturedSID)
	}

	req = httptest.NewRequest(http.MethodGet, "/?session_id=tab-7", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if capturedSID != "tab-7" {
		t.Errorf("Expected session id from query, got %q", capturedSID)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeaderName, "bad session id!!")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if capturedSID != DefaultSessionIDValue {
		t.Errorf("Expected default session id for invalid value, got %q", capturedSID)
	}
}

func TestDeriveNickname(t *testing.T) {
	if got := deriveNickname("anon_0123456789abcdef0123456789abcdef"); got != "reader-89abcdef" {
		t.Errorf("Expected reader-89abcdef, got %q", got)
	}
	if got := deriveNickname("short"); got != "reader" {
		t.Errorf("Expected plain reader for short id, got %q", got)
	}
}
