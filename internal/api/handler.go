// Package api provides HTTP handlers for the course API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/metrics"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/render"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/store"
)

// Handler provides common handler dependencies and utilities.
type Handler struct {
	registry *content.Registry
	repo     store.Repository
	renderer *render.Renderer
	metrics  *metrics.Metrics
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(registry *content.Registry, repo store.Repository, renderer *render.Renderer, m *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		repo:     repo,
		renderer: renderer,
		metrics:  m,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
