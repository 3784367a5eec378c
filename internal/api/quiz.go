package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/identity"
)

// QuizHandler serves quiz retrieval and grading.
type QuizHandler struct {
	*Handler
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(base *Handler) *QuizHandler {
	return &QuizHandler{Handler: base}
}

// RegisterRoutes registers quiz routes.
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chapters/{number}/quiz", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/attempts", h.ListAttempts)
		r.Post("/attempts", h.Submit)
	})
}

func (h *QuizHandler) quizParam(w http.ResponseWriter, r *http.Request) (*content.Chapter, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		Error(w, http.StatusNotFound, "chapter not found")
		return nil, false
	}
	ch, ok := h.registry.Chapter(number)
	if !ok {
		Error(w, http.StatusNotFound, "chapter not found")
		return nil, false
	}
	if !ch.HasQuiz() {
		Error(w, http.StatusNotFound, "chapter has no quiz")
		return nil, false
	}
	return ch, true
}

// Get returns the chapter quiz with answer keys stripped.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.quizParam(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, ch.Quiz.Public())
}

// submitRequest is the grading request body.
type submitRequest struct {
	Answers map[string]content.Answer `json:"answers"`
}

// submitResponse is the grading response.
type submitResponse struct {
	AttemptID string              `json:"attemptId"`
	Result    content.GradeResult `json:"result"`
}

// Submit grades a full-quiz submission, persists the attempt, and returns
// the per-question verdicts.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.quizParam(w, r)
	if !ok {
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result := ch.Quiz.Grade(req.Answers)
	h.metrics.QuizSubmitted(ch.Number, result.Passed)

	attempt := &domain.QuizAttempt{
		ID:        uuid.NewString(),
		LearnerID: identity.LearnerIDFromContext(r.Context()),
		Chapter:   ch.Number,
		Score:     result.Score,
		Passed:    result.Passed,
		CreatedAt: time.Now(),
	}
	if answersJSON, err := json.Marshal(req.Answers); err == nil {
		attempt.AnswersJSON = string(answersJSON)
	}
	if err := h.repo.InsertQuizAttempt(r.Context(), attempt); err != nil {
		// Grading already happened; losing the history row is not worth a 500.
		slog.Error("Failed to persist quiz attempt", "error", err, "chapter", ch.Number)
	}

	JSON(w, http.StatusOK, submitResponse{AttemptID: attempt.ID, Result: result})
}

// ListAttempts returns the learner's recent attempts for the chapter.
func (h *QuizHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.quizParam(w, r)
	if !ok {
		return
	}
	learnerID := identity.LearnerIDFromContext(r.Context())
	attempts, err := h.repo.ListQuizAttempts(r.Context(), learnerID, ch.Number, 20)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load attempts")
		return
	}
	if attempts == nil {
		attempts = []*domain.QuizAttempt{}
	}
	JSON(w, http.StatusOK, attempts)
}
