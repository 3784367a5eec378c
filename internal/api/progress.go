package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/identity"
)

// ProgressHandler serves reading-progress endpoints.
type ProgressHandler struct {
	*Handler
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(base *Handler) *ProgressHandler {
	return &ProgressHandler{Handler: base}
}

// RegisterRoutes registers progress routes.
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/progress", func(r chi.Router) {
		r.Get("/", h.List)
		r.Put("/{number}", h.Update)
	})
}

// List returns all progress rows for the current learner.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	learnerID := identity.LearnerIDFromContext(r.Context())
	rows, err := h.repo.ListProgress(r.Context(), learnerID)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	if rows == nil {
		rows = []*domain.ReadingProgress{}
	}
	JSON(w, http.StatusOK, rows)
}

// updateRequest marks a chapter viewed or completed.
type updateRequest struct {
	Completed bool `json:"completed"`
}

// Update upserts the learner's progress row for a chapter.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		Error(w, http.StatusNotFound, "chapter not found")
		return
	}
	if _, ok := h.registry.Chapter(number); !ok {
		Error(w, http.StatusNotFound, "chapter not found")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	now := time.Now()
	progress := &domain.ReadingProgress{
		LearnerID:    identity.LearnerIDFromContext(r.Context()),
		Chapter:      number,
		Completed:    req.Completed,
		LastViewedAt: now,
		UpdatedAt:    now,
	}
	if err := h.repo.UpsertProgress(r.Context(), progress); err != nil {
		Error(w, http.StatusInternalServerError, "failed to save progress")
		return
	}

	JSON(w, http.StatusOK, progress)
}
