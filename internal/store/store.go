// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
)

// Repository defines the interface for persisting learner state: identity
// rows, quiz attempts, and reading progress.
type Repository interface {
	// GetLearner retrieves a learner by id. Returns (nil, nil) when absent.
	GetLearner(ctx context.Context, learnerID string) (*domain.Learner, error)

	// UpsertLearner creates or updates a learner record.
	UpsertLearner(ctx context.Context, learner *domain.Learner) error

	// UpdateLastSeen updates the last_seen_at timestamp for a learner.
	UpdateLastSeen(ctx context.Context, learnerID string, lastSeen time.Time) error

	// InsertQuizAttempt records a graded quiz submission.
	InsertQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error

	// ListQuizAttempts returns a learner's attempts for a chapter, newest
	// first, capped at limit (0 = no cap).
	ListQuizAttempts(ctx context.Context, learnerID string, chapter int, limit int) ([]*domain.QuizAttempt, error)

	// UpsertProgress creates or updates a chapter progress row.
	UpsertProgress(ctx context.Context, progress *domain.ReadingProgress) error

	// ListProgress returns all progress rows for a learner ordered by chapter.
	ListProgress(ctx context.Context, learnerID string) ([]*domain.ReadingProgress, error)

	// CleanupStaleLearners removes learners (and their attempts/progress)
	// inactive for longer than ttl. Returns the number of learners removed.
	CleanupStaleLearners(ctx context.Context, ttl time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
