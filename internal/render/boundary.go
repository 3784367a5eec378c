package render

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// genericFailureMessage is shown when a panic carries no usable message.
const genericFailureMessage = "Something went wrong while rendering this section."

// Boundary contains rendering failures for one wrapped subtree. A panic
// inside the render function moves the boundary from Healthy to Failed; it
// then serves a fallback until an explicit Reset, which bumps the
// generation counter so clients remount the subtree from scratch instead of
// reusing the state that caused the failure.
//
// Only synchronous render panics are caught. Failures in goroutines or
// deferred async work must be surfaced by the code that owns them; the
// boundary deliberately has no channel for those.
type Boundary struct {
	name   string
	logger *slog.Logger

	mu         sync.Mutex
	failure    string // empty while Healthy
	generation int
}

// NewBoundary creates a boundary tagged with a context name ("Quiz",
// "Diagram", ...) used in fallback headings and log entries.
func NewBoundary(name string, logger *slog.Logger) *Boundary {
	if logger == nil {
		logger = slog.Default()
	}
	return &Boundary{name: name, logger: logger}
}

// Fallback is the user-visible failure card.
type Fallback struct {
	Heading string `json:"heading"`
	Message string `json:"message"`
	IconKey string `json:"iconKey"`
}

// Result is the outcome of a boundary-wrapped render: either the blocks or
// a fallback, never both. Generation is the remount key for the subtree.
type Result struct {
	Blocks     []Block   `json:"blocks,omitempty"`
	Fallback   *Fallback `json:"fallback,omitempty"`
	Generation int       `json:"generation"`
}

// Render runs fn, recovering any panic. While Failed, fn is not invoked and
// the fallback is served directly.
func (b *Boundary) Render(fn func() []Block) Result {
	b.mu.Lock()
	if b.failure != "" {
		res := b.fallbackLocked()
		b.mu.Unlock()
		return res
	}
	gen := b.generation
	b.mu.Unlock()

	blocks, msg := b.invoke(fn)
	if msg == "" {
		return Result{Blocks: blocks, Generation: gen}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.failure = msg
	return b.fallbackLocked()
}

// invoke runs fn under recover, returning the panic message on failure.
func (b *Boundary) invoke(fn func() []Block) (blocks []Block, failure string) {
	defer func() {
		if r := recover(); r != nil {
			failure = panicMessage(r)
			b.logger.Error(fmt.Sprintf("[ErrorBoundary:%s] render failed", b.name),
				"error", failure,
				"stack", string(debug.Stack()))
		}
	}()
	return fn(), ""
}

// Reset moves a Failed boundary back to Healthy and bumps the generation.
// Resetting a Healthy boundary is a no-op: no state change, no logging.
func (b *Boundary) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failure == "" {
		return
	}
	b.failure = ""
	b.generation++
	b.logger.Debug(fmt.Sprintf("[ErrorBoundary:%s] reset", b.name), "generation", b.generation)
}

// Healthy reports whether the boundary is currently serving content.
func (b *Boundary) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failure == ""
}

// Generation returns the current remount key.
func (b *Boundary) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

func (b *Boundary) fallbackLocked() Result {
	return Result{
		Fallback: &Fallback{
			Heading: fmt.Sprintf("%s failed to load", b.name),
			Message: b.failure,
			IconKey: "alert-triangle",
		},
		Generation: b.generation,
	}
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		if v.Error() != "" {
			return v.Error()
		}
	case string:
		if v != "" {
			return v
		}
	default:
		if s := fmt.Sprintf("%v", r); s != "" && s != "<nil>" {
			return s
		}
	}
	return genericFailureMessage
}
