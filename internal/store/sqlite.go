package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS learners (
		learner_id TEXT PRIMARY KEY,
		nickname TEXT NOT NULL,
		last_seen_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_learners_last_seen ON learners(last_seen_at);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		chapter INTEGER NOT NULL,
		score INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		answers_json TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attempts_learner_chapter ON quiz_attempts(learner_id, chapter, created_at);

	CREATE TABLE IF NOT EXISTS reading_progress (
		learner_id TEXT NOT NULL,
		chapter INTEGER NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		last_viewed_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (learner_id, chapter)
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetLearner retrieves a learner by id.
func (s *SQLiteStore) GetLearner(ctx context.Context, learnerID string) (*domain.Learner, error) {
	query := `
		SELECT learner_id, nickname, last_seen_at, created_at, updated_at
		FROM learners WHERE learner_id = ?`

	row := s.db.QueryRowContext(ctx, query, learnerID)

	var learner domain.Learner
	var lastSeen, createdAt, updatedAt int64

	err := row.Scan(&learner.LearnerID, &learner.Nickname, &lastSeen, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan learner row: %w", err)
	}

	learner.LastSeenAt = time.Unix(lastSeen, 0)
	learner.CreatedAt = time.Unix(createdAt, 0)
	learner.UpdatedAt = time.Unix(updatedAt, 0)

	return &learner, nil
}

// UpsertLearner creates or updates a learner record.
func (s *SQLiteStore) UpsertLearner(ctx context.Context, learner *domain.Learner) error {
	query := `
	INSERT INTO learners (learner_id, nickname, last_seen_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(learner_id) DO UPDATE SET
		nickname = excluded.nickname,
		last_seen_at = excluded.last_seen_at,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		learner.LearnerID, learner.Nickname,
		learner.LastSeenAt.Unix(), learner.CreatedAt.Unix(), learner.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert learner: %w", err)
	}
	return nil
}

// UpdateLastSeen updates the last_seen_at timestamp for a learner.
func (s *SQLiteStore) UpdateLastSeen(ctx context.Context, learnerID string, lastSeen time.Time) error {
	query := `UPDATE learners SET last_seen_at = ?, updated_at = ? WHERE learner_id = ?`
	result, err := s.db.ExecContext(ctx, query, lastSeen.Unix(), time.Now().Unix(), learnerID)
	if err != nil {
		return fmt.Errorf("update last_seen: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		slog.Warn("UpdateLastSeen affected 0 rows", "learner_id", learnerID)
	}

	return nil
}

// InsertQuizAttempt records a graded quiz submission.
func (s *SQLiteStore) InsertQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	query := `
	INSERT INTO quiz_attempts (id, learner_id, chapter, score, passed, answers_json, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		attempt.ID, attempt.LearnerID, attempt.Chapter,
		attempt.Score, boolToInt(attempt.Passed), attempt.AnswersJSON,
		attempt.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert quiz attempt: %w", err)
	}
	return nil
}

// ListQuizAttempts returns a learner's attempts for a chapter, newest first.
func (s *SQLiteStore) ListQuizAttempts(ctx context.Context, learnerID string, chapter int, limit int) ([]*domain.QuizAttempt, error) {
	query := `
		SELECT id, learner_id, chapter, score, passed, answers_json, created_at
		FROM quiz_attempts WHERE learner_id = ? AND chapter = ?
		ORDER BY created_at DESC`
	args := []interface{}{learnerID, chapter}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close quiz attempt rows", "error", closeErr)
		}
	}()

	var attempts []*domain.QuizAttempt
	for rows.Next() {
		var attempt domain.QuizAttempt
		var passed int
		var createdAt int64

		if err := rows.Scan(
			&attempt.ID, &attempt.LearnerID, &attempt.Chapter,
			&attempt.Score, &passed, &attempt.AnswersJSON, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan quiz attempt row: %w", err)
		}

		attempt.Passed = passed != 0
		attempt.CreatedAt = time.Unix(createdAt, 0)
		attempts = append(attempts, &attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz attempts: %w", err)
	}

	return attempts, nil
}

// UpsertProgress creates or updates a chapter progress row. A row never
// moves from completed back to not-completed.
func (s *SQLiteStore) UpsertProgress(ctx context.Context, progress *domain.ReadingProgress) error {
	query := `
	INSERT INTO reading_progress (learner_id, chapter, completed, last_viewed_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(learner_id, chapter) DO UPDATE SET
		completed = MAX(completed, excluded.completed),
		last_viewed_at = excluded.last_viewed_at,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		progress.LearnerID, progress.Chapter, boolToInt(progress.Completed),
		progress.LastViewedAt.Unix(), progress.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// ListProgress returns all progress rows for a learner ordered by chapter.
func (s *SQLiteStore) ListProgress(ctx context.Context, learnerID string) ([]*domain.ReadingProgress, error) {
	query := `
		SELECT learner_id, chapter, completed, last_viewed_at, updated_at
		FROM reading_progress WHERE learner_id = ? ORDER BY chapter`

	rows, err := s.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close progress rows", "error", closeErr)
		}
	}()

	var progress []*domain.ReadingProgress
	for rows.Next() {
		var p domain.ReadingProgress
		var completed int
		var lastViewed, updatedAt int64

		if err := rows.Scan(&p.LearnerID, &p.Chapter, &completed, &lastViewed, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}

		p.Completed = completed != 0
		p.LastViewedAt = time.Unix(lastViewed, 0)
		p.UpdatedAt = time.Unix(updatedAt, 0)
		progress = append(progress, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return progress, nil
}

// CleanupStaleLearners removes learners inactive for longer than ttl along
// with their attempts and progress.
func (s *SQLiteStore) CleanupStaleLearners(ctx context.Context, ttl time.Duration) (int64, error) {
	threshold := time.Now().Add(-ttl).Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin cleanup transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	subquery := `SELECT learner_id FROM learners WHERE last_seen_at < ?`

	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_attempts WHERE learner_id IN (`+subquery+`)`, threshold); err != nil {
		return 0, fmt.Errorf("delete stale attempts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM reading_progress WHERE learner_id IN (`+subquery+`)`, threshold); err != nil {
		return 0, fmt.Errorf("delete stale progress: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM learners WHERE last_seen_at < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete stale learners: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cleanup: %w", err)
	}

	return deleted, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
