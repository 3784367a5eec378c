package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/icons"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/identity"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/nav"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/render"
)

// ChapterHandler serves chapter listings, detail, and rendered content.
type ChapterHandler struct {
	*Handler
	boundaries map[int]*render.Boundary
}

// NewChapterHandler creates the chapter handler with one content boundary
// per chapter, so a rendering failure in one chapter never blanks another.
func NewChapterHandler(base *Handler, logger *slog.Logger) *ChapterHandler {
	h := &ChapterHandler{
		Handler:    base,
		boundaries: make(map[int]*render.Boundary, base.registry.Len()),
	}
	for _, ch := range base.registry.Chapters() {
		h.boundaries[ch.Number] = render.NewBoundary("Chapter content", logger)
	}
	return h
}

// RegisterRoutes registers chapter and navigation routes.
func (h *ChapterHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/chapters", h.List)
		r.Get("/chapters/{number}", h.Detail)
		r.Get("/chapters/{number}/content", h.Content)
		r.Post("/chapters/{number}/content/reset", h.ResetContent)
		r.Get("/chapters/{number}/tutorial", h.Tutorial)
		r.Get("/breadcrumb", h.Breadcrumb)
		r.Get("/concepts", h.Concepts)
		r.Get("/icons/{key}", h.Icon)
	})
}

// chapterSummary is the listing view of a chapter.
type chapterSummary struct {
	Number      int                 `json:"number"`
	Title       string              `json:"title"`
	ShortTitle  string              `json:"shortTitle"`
	Icon        string              `json:"icon,omitempty"`
	Color       string              `json:"color,omitempty"`
	Description string              `json:"description,omitempty"`
	ReadingMeta content.ReadingMeta `json:"readingMeta"`
	HasQuiz     bool                `json:"hasQuiz"`
}

// List returns all chapters ordered by number.
func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
	chapters := h.registry.Chapters()
	out := make([]chapterSummary, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, chapterSummary{
			Number:      ch.Number,
			Title:       ch.Title,
			ShortTitle:  ch.ShortTitle,
			Icon:        ch.Icon,
			Color:       ch.Color,
			Description: ch.Description,
			ReadingMeta: ch.ReadingMeta,
			HasQuiz:     ch.HasQuiz(),
		})
	}
	JSON(w, http.StatusOK, out)
}

// chapterParam parses the {number} route parameter and resolves the
// chapter, writing the 404 response on a miss.
func (h *ChapterHandler) chapterParam(w http.ResponseWriter, r *http.Request) (*content.Chapter, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		Error(w, http.StatusNotFound, "chapter not found")
		return nil, false
	}
	ch, ok := h.registry.Chapter(n)
	if !ok {
		Error(w, http.StatusNotFound, "chapter not found")
		return nil, false
	}
	return ch, true
}

// Detail returns the full chapter with quiz answer keys stripped. Viewing a
// chapter also records reading progress for the learner, best effort.
func (h *ChapterHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.chapterParam(w, r)
	if !ok {
		return
	}

	h.metrics.ChapterViewed(ch.Number)
	h.recordView(r, ch.Number)

	if ch.Quiz == nil {
		JSON(w, http.StatusOK, ch)
		return
	}
	view := *ch
	view.Quiz = ch.Quiz.Public()
	JSON(w, http.StatusOK, &view)
}

func (h *ChapterHandler) recordView(r *http.Request, chapter int) {
	learnerID := identity.LearnerIDFromContext(r.Context())
	if learnerID == "" {
		return
	}
	now := time.Now()
	err := h.repo.UpsertProgress(r.Context(), &domain.ReadingProgress{
		LearnerID:    learnerID,
		Chapter:      chapter,
		LastViewedAt: now,
		UpdatedAt:    now,
	})
	if err != nil {
		slog.Warn("Failed to record chapter view", "error", err, "learner_id", learnerID, "chapter", chapter)
	}
}

// Content returns the chapter's sections rendered to blocks, wrapped in the
// chapter's error boundary: a panic while rendering yields the fallback
// card instead of a 500.
func (h *ChapterHandler) Content(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.chapterParam(w, r)
	if !ok {
		return
	}

	boundary := h.boundaries[ch.Number]
	result := boundary.Render(func() []render.Block {
		return h.renderer.Sections(ch.Sections, ch.Number, ch.Color)
	})
	JSON(w, http.StatusOK, result)
}

// tutorialView is one rendered tutorial section.
type tutorialView struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Blocks      []render.Block `json:"blocks"`
}

// Tutorial returns the chapter's hands-on tutorial sections rendered to
// blocks. Chapters without a tutorial return an empty list.
func (h *ChapterHandler) Tutorial(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.chapterParam(w, r)
	if !ok {
		return
	}

	out := make([]tutorialView, 0, len(ch.Tutorial))
	for _, ts := range ch.Tutorial {
		out = append(out, tutorialView{
			Title:       ts.Title,
			Description: ts.Description,
			Blocks:      h.renderer.Steps(ts.Steps, ch.Number, ch.Color),
		})
	}
	JSON(w, http.StatusOK, out)
}

// ResetContent is the "Try again" action for a failed chapter boundary.
// Resetting a healthy boundary is a no-op.
func (h *ChapterHandler) ResetContent(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.chapterParam(w, r)
	if !ok {
		return
	}
	boundary := h.boundaries[ch.Number]
	boundary.Reset()
	JSON(w, http.StatusOK, map[string]int{"generation": boundary.Generation()})
}

// Breadcrumb resolves a route path to the header crumb. Misses return 204:
// an invalid chapter URL must not break the header.
func (h *ChapterHandler) Breadcrumb(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	compact := r.URL.Query().Get("compact") == "true"

	crumb := nav.Resolve(path, h.registry, compact)
	if crumb == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	JSON(w, http.StatusOK, crumb)
}

// Concepts returns the concept id -> introducing chapter index used by the
// frontend tooltip layer.
func (h *ChapterHandler) Concepts(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.registry.Concepts())
}

// Icon serves the SVG for an icon key; unknown keys get the default icon.
func (h *ChapterHandler) Icon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write([]byte(icons.Resolve(chi.URLParam(r, "key")))); err != nil {
		slog.Debug("Failed to write icon response", "error", err)
	}
}
