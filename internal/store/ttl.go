package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/shared"
)

const ttlWorkerInterval = 6 * time.Hour

// StartTTLWorker runs a background goroutine that periodically sweeps
// anonymous learners (and their attempts/progress) whose last activity is
// older than ttl.
func StartTTLWorker(ctx context.Context, repo Repository, ttl time.Duration) {
	ticker := time.NewTicker(ttlWorkerInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("TTL worker started", "interval", ttlWorkerInterval, "ttl", ttl)

		for {
			select {
			case <-ticker.C:
				sweepStaleLearners(ctx, repo, ttl)
			case <-ctx.Done():
				slog.Info("TTL worker shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

// sweepStaleLearners runs one cleanup pass with retry on SQLite contention.
func sweepStaleLearners(ctx context.Context, repo Repository, ttl time.Duration) {
	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		deleted, err := repo.CleanupStaleLearners(ctx, ttl)
		if err == nil {
			if deleted > 0 {
				slog.Info("TTL worker swept stale learners", "deleted", deleted)
			}
			return
		}

		if shared.IsSQLiteConflictError(err) && i < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<i)
			slog.Debug("TTL worker cleanup hit database contention, retrying",
				"attempt", i+1,
				"delay", delay)
			time.Sleep(delay)
			continue
		}

		if ctx.Err() != nil {
			return
		}
		slog.Error("TTL worker cleanup failed", "error", err)
		return
	}
}
