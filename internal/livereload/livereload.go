// Package livereload pushes a reload notice to connected browsers when the
// on-disk frontend assets change. Development-only plumbing; never mounted
// in production.
package livereload

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/fsnotify/fsnotify"
)

// debounce collapses editor save bursts into one reload notice.
const debounce = 250 * time.Millisecond

// Hub tracks subscribed connections and broadcasts reload frames.
type Hub struct {
	mu    sync.Mutex
	next  int
	conns map[int]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[int]*websocket.Conn)}
}

// ServeHTTP upgrades the connection and keeps it subscribed until the
// client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Debug("livereload: failed to accept websocket", "error", err)
		return
	}

	h.mu.Lock()
	id := h.next
	h.next++
	h.conns[id] = ws
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, id)
		h.mu.Unlock()
		_ = ws.Close(websocket.StatusNormalClosure, "bye")
	}()

	// Drain (and ignore) client frames; returning on read error is the
	// disconnect signal.
	for {
		if _, _, err := ws.Read(r.Context()); err != nil {
			return
		}
	}
}

// Broadcast sends a reload frame to every subscriber.
func (h *Hub) Broadcast(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ws := range h.conns {
		if err := ws.Write(ctx, websocket.MessageText, []byte(`{"type":"reload"}`)); err != nil {
			slog.Debug("livereload: dropping subscriber", "id", id, "error", err)
			_ = ws.Close(websocket.StatusNormalClosure, "write failed")
			delete(h.conns, id)
		}
	}
}

// Watch runs an fsnotify watcher over dir until ctx is done, broadcasting
// after each (debounced) change burst. Returns immediately with an error if
// the watcher cannot start.
func Watch(ctx context.Context, dir string, hub *Hub) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer func() {
			if closeErr := watcher.Close(); closeErr != nil {
				slog.Debug("livereload: failed to close watcher", "error", closeErr)
			}
		}()

		var timer *time.Timer
		var pending <-chan time.Time

		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					pending = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-pending:
				slog.Debug("livereload: assets changed, broadcasting", "dir", dir)
				hub.Broadcast(ctx)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("livereload: watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	slog.Info("Live reload watching assets", "dir", dir)
	return nil
}
