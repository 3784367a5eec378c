package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/metrics"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/render"
)

func intp(n int) *int { return &n }

// fakeRepo is an in-memory store.Repository for handler tests.
type fakeRepo struct {
	learners map[string]*domain.Learner
	attempts []*domain.QuizAttempt
	progress map[string]*domain.ReadingProgress // learnerID/chapter key

	failInsert bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		learners: make(map[string]*domain.Learner),
		progress: make(map[string]*domain.ReadingProgress),
	}
}

func progressKey(learnerID string, chapter int) string {
	return fmt.Sprintf("%s/%d", learnerID, chapter)
}

func (f *fakeRepo) GetLearner(_ context.Context, learnerID string) (*domain.Learner, error) {
	return f.learners[learnerID], nil
}

func (f *fakeRepo) UpsertLearner(_ context.Context, learner *domain.Learner) error {
	f.learners[learner.LearnerID] = learner
	return nil
}

func (f *fakeRepo) UpdateLastSeen(_ context.Context, learnerID string, lastSeen time.Time) error {
	if l, ok := f.learners[learnerID]; ok {
		l.LastSeenAt = lastSeen
	}
	return nil
}

func (f *fakeRepo) InsertQuizAttempt(_ context.Context, attempt *domain.QuizAttempt) error {
	if f.failInsert {
		return context.DeadlineExceeded
	}
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeRepo) ListQuizAttempts(_ context.Context, learnerID string, chapter, limit int) ([]*domain.QuizAttempt, error) {
	var out []*domain.QuizAttempt
	for _, a := range f.attempts {
		if a.LearnerID == learnerID && a.Chapter == chapter {
			out = append(out, a)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) UpsertProgress(_ context.Context, p *domain.ReadingProgress) error {
	f.progress[progressKey(p.LearnerID, p.Chapter)] = p
	return nil
}

func (f *fakeRepo) ListProgress(_ context.Context, learnerID string) ([]*domain.ReadingProgress, error) {
	var out []*domain.ReadingProgress
	for _, p := range f.progress {
		if p.LearnerID == learnerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) CleanupStaleLearners(_ context.Context, _ time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) Ping(_ context.Context) error { return nil }
func (f *fakeRepo) Close() error                 { return nil }

// testRegistry builds a two-chapter registry, chapter 1 with a quiz and
// chapter 2 without.
func testRegistry(t *testing.T) *content.Registry {
	t.Helper()
	reg, err := content.NewRegistry(
		&content.Chapter{
			Number:      1,
			Title:       "Prompt Chaining",
			ShortTitle:  "Prompt Chaining",
			Icon:        "link",
			ReadingMeta: content.ReadingMeta{EstimatedMinutes: 10, Difficulty: content.DifficultyBeginner},
			Sections: []content.Section{
				{Type: content.SectionNarrative, Content: "intro"},
				{Type: content.SectionCode, Code: "x = 1\n", Language: "python"},
			},
			Quiz: &content.Quiz{
				Title:        "Check",
				PassingScore: 50,
				Questions: []content.Question{
					{
						ID:       "q1",
						Question: "Pick b",
						Options:  []content.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},

						CorrectOptionID: "b",
						Explanation:     "b it is",
					},
					{
						ID:       "q2",
						Question: "Order",
						Type:     content.QuestionOrdering,
						Options:  []content.Option{{ID: "x", Text: "X"}, {ID: "y", Text: "Y"}},

						CorrectOrder: []string{"x", "y"},
					},
				},
			},
			Tutorial: []content.TutorialSection{{
				Title: "First chain",
				Steps: []content.TutorialStep{
					{Section: content.Section{Type: content.SectionNarrative, Content: "start"}},
					{Section: content.Section{Type: content.SectionCheckpoint, Content: "verify"}},
				},
			}},
			NextChapter: intp(2),
		},
		&content.Chapter{
			Number:      2,
			Title:       "Routing",
			ShortTitle:  "Routing",
			Icon:        "split",
			ReadingMeta: content.ReadingMeta{EstimatedMinutes: 10, Difficulty: content.DifficultyBeginner},
			Sections:    []content.Section{{Type: content.SectionNarrative, Content: "routing"}},
			PrevChapter: intp(1),
		},
	)
	if err != nil {
		t.Fatalf("Failed to build registry: %v", err)
	}
	return reg
}

// newTestServer wires the full API router over the fake repo.
func newTestServer(t *testing.T, repo *fakeRepo) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))

	base := NewHandler(testRegistry(t), repo, render.New(), metrics.New())
	r := chi.NewRouter()
	NewChapterHandler(base, logger).RegisterRoutes(r)
	NewQuizHandler(base).RegisterRoutes(r)
	NewProgressHandler(base).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
