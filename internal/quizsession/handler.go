package quizsession

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/identity"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/store"
)

// frame is the wire message for both directions.
type frame struct {
	Type string `json:"type"`

	// question (server -> client)
	Index    int               `json:"index,omitempty"`
	Total    int               `json:"total,omitempty"`
	Question *content.Question `json:"question,omitempty"`

	// answer (client -> server)
	QuestionID       string   `json:"questionId,omitempty"`
	SelectedOptionID string   `json:"selectedOptionId,omitempty"`
	Order            []string `json:"order,omitempty"`

	// verdict (server -> client)
	Correct     *bool  `json:"correct,omitempty"`
	Explanation string `json:"explanation,omitempty"`

	// result (server -> client)
	Score        *int  `json:"score,omitempty"`
	CorrectCount *int  `json:"correctCount,omitempty"`
	Passed       *bool `json:"passed,omitempty"`

	// error (server -> client)
	Error string `json:"error,omitempty"`
}

// answerTimeout bounds how long the server waits for one answer frame.
const answerTimeout = 10 * time.Minute

// WebSocketHandler plays a chapter quiz over a WebSocket connection.
type WebSocketHandler struct {
	registry      *content.Registry
	repo          store.Repository
	sm            *SessionManager
	allowedOrigin string
	isDev         bool
}

// NewWebSocketHandler creates a new WebSocket quiz handler.
func NewWebSocketHandler(registry *content.Registry, repo store.Repository, sm *SessionManager, allowedOrigin string, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		registry:      registry,
		repo:          repo,
		sm:            sm,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for WebSocket upgrade. The chapter is
// selected with a ?chapter=N query parameter.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	learnerID := identity.LearnerIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	chapterNum, err := strconv.Atoi(r.URL.Query().Get("chapter"))
	if err != nil {
		http.Error(w, "chapter query parameter required", http.StatusBadRequest)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "learner_id", learnerID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "quiz ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "learner_id", learnerID)
		}
	}()

	h.sm.Register(learnerID, sessionID, ws)
	defer h.sm.Unregister(learnerID, sessionID, ws)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	chapter, ok := h.registry.Chapter(chapterNum)
	if !ok || !chapter.HasQuiz() {
		h.writeFrame(ctx, ws, frame{Type: "error", Error: "quiz_not_found"})
		return
	}

	h.play(ctx, ws, learnerID, chapter)
}

// play runs the question-by-question loop and persists the attempt.
func (h *WebSocketHandler) play(ctx context.Context, ws *websocket.Conn, learnerID string, chapter *content.Chapter) {
	quiz := chapter.Quiz
	answers := make(map[string]content.Answer, len(quiz.Questions))

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		pub := q.Public()
		if err := h.writeFrame(ctx, ws, frame{
			Type:     "question",
			Index:    i + 1,
			Total:    len(quiz.Questions),
			Question: &pub,
		}); err != nil {
			slog.Debug("Quiz session write failed", "error", err, "learner_id", learnerID)
			return
		}

		ans, err := h.readAnswer(ctx, ws, q.ID)
		if err != nil {
			slog.Debug("Quiz session read failed", "error", err, "learner_id", learnerID)
			return
		}
		answers[q.ID] = ans

		correct := q.Check(ans)
		if err := h.writeFrame(ctx, ws, frame{
			Type:        "verdict",
			QuestionID:  q.ID,
			Correct:     &correct,
			Explanation: q.Explanation,
		}); err != nil {
			return
		}
	}

	result := quiz.Grade(answers)
	if err := h.persistAttempt(ctx, learnerID, chapter.Number, answers, result); err != nil {
		slog.Error("Failed to persist quiz attempt", "error", err, "learner_id", learnerID, "chapter", chapter.Number)
	}

	if err := h.writeFrame(ctx, ws, frame{
		Type:         "result",
		Score:        &result.Score,
		CorrectCount: &result.CorrectCount,
		Total:        result.Total,
		Passed:       &result.Passed,
	}); err != nil {
		slog.Debug("Quiz result write failed", "error", err, "learner_id", learnerID)
	}
}

// readAnswer blocks for the answer frame matching questionID, skipping
// frames for other questions (stale retransmits after a reconnect).
func (h *WebSocketHandler) readAnswer(ctx context.Context, ws *websocket.Conn, questionID string) (content.Answer, error) {
	readCtx, cancel := context.WithTimeout(ctx, answerTimeout)
	defer cancel()

	for {
		_, data, err := ws.Read(readCtx)
		if err != nil {
			return content.Answer{}, err
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			if err := h.writeFrame(ctx, ws, frame{Type: "error", Error: "malformed_frame"}); err != nil {
				return content.Answer{}, err
			}
			continue
		}
		if f.Type != "answer" || f.QuestionID != questionID {
			continue
		}

		return content.Answer{SelectedOptionID: f.SelectedOptionID, Order: f.Order}, nil
	}
}

func (h *WebSocketHandler) persistAttempt(ctx context.Context, learnerID string, chapter int, answers map[string]content.Answer, result content.GradeResult) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return h.repo.InsertQuizAttempt(ctx, &domain.QuizAttempt{
		ID:          uuid.NewString(),
		LearnerID:   learnerID,
		Chapter:     chapter,
		Score:       result.Score,
		Passed:      result.Passed,
		AnswersJSON: string(answersJSON),
		CreatedAt:   time.Now(),
	})
}

func (h *WebSocketHandler) writeFrame(ctx context.Context, ws *websocket.Conn, f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}

// checkOrigin mirrors the CORS policy for the upgrade request. In
// development any origin is accepted.
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev || h.allowedOrigin == "" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == h.allowedOrigin
}
