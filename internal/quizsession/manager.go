// Package quizsession provides WebSocket-based interactive quiz sessions:
// a chapter's quiz played question by question over one connection.
package quizsession

import (
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

// SessionManager manages active WebSocket connections for learners.
type SessionManager struct {
	mu     sync.RWMutex
	active map[string]map[string]*websocket.Conn
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		active: make(map[string]map[string]*websocket.Conn),
	}
}

// GetActive returns the active connection for a learner and tab session.
func (m *SessionManager) GetActive(learnerID, sessionID string) *websocket.Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sessions, ok := m.active[learnerID]; ok {
		return sessions[sessionID]
	}
	return nil
}

// Register adds a new WebSocket connection for a learner/session. A second
// connection for the same tab session replaces the first.
func (m *SessionManager) Register(learnerID, sessionID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.active[learnerID]; !exists {
		m.active[learnerID] = make(map[string]*websocket.Conn)
	}

	if existing, exists := m.active[learnerID][sessionID]; exists && existing != conn {
		_ = existing.Close(websocket.StatusNormalClosure, "session replaced")
	}

	m.active[learnerID][sessionID] = conn
	slog.Info("Quiz session registered", "learner_id", learnerID, "session_id", sessionID)
}

// Unregister removes a WebSocket connection for a learner/session.
func (m *SessionManager) Unregister(learnerID, sessionID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessions, ok := m.active[learnerID]; ok {
		if current, exists := sessions[sessionID]; exists && current == conn {
			delete(sessions, sessionID)
			if len(sessions) == 0 {
				delete(m.active, learnerID)
			}
			slog.Info("Quiz session unregistered", "learner_id", learnerID, "session_id", sessionID)
		}
	}
}

// CloseAll terminates every active session, used during shutdown.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for learnerID, sessions := range m.active {
		for _, conn := range sessions {
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
		delete(m.active, learnerID)
	}
}

// CloseSessions forcefully terminates all active sessions for a learner.
func (m *SessionManager) CloseSessions(learnerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions, ok := m.active[learnerID]
	if !ok {
		return
	}

	for sid, conn := range sessions {
		_ = conn.Close(websocket.StatusNormalClosure, "session closed")
		slog.Info("Quiz session closed", "learner_id", learnerID, "session_id", sid)
	}
	delete(m.active, learnerID)
}
