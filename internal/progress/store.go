// Package progress persists grading attempts in a SQLite database so the
// CLI can show completion state across sessions. The grading core itself is
// persistence-unaware; this store consumes only the report aggregates.
package progress

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/filelock"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Attempt is one recorded grading run.
type Attempt struct {
	ID           string
	ExerciseID   string
	PassedChecks int
	TotalChecks  int
	Passed       bool
	Duration     time.Duration
	CreatedAt    time.Time
}

// Store manages the SQLite database holding attempt history.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if necessary) the progress database at dbPath.
// Pass ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	return openAndInitStore(dbPath)
}

// openAndInitStore opens the database connection and initializes the schema.
func openAndInitStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so the remaining pragmas wait on locks instead of
	// failing when another ftu process is initializing the same file.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// execWithRetry executes a SQL statement with exponential backoff retry on
// "database is locked" errors.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordAttempt stores the aggregates of one grading report and returns the
// recorded attempt with its generated id.
func (s *Store) RecordAttempt(ctx context.Context, report models.GradeReport) (*Attempt, error) {
	if report.ExerciseID == "" {
		return nil, fmt.Errorf("report has no exercise id")
	}

	attempt := &Attempt{
		ID:           uuid.NewString(),
		ExerciseID:   report.ExerciseID,
		PassedChecks: report.PassedChecks,
		TotalChecks:  report.TotalChecks,
		Passed:       report.Passed(),
		Duration:     report.Duration,
		CreatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO attempts
		(id, exercise_id, passed_checks, total_checks, passed, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.ExerciseID,
		attempt.PassedChecks,
		attempt.TotalChecks,
		attempt.Passed,
		attempt.Duration.Milliseconds(),
		attempt.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	return attempt, nil
}

// History returns all attempts for an exercise, most recent first.
func (s *Store) History(ctx context.Context, exerciseID string) ([]*Attempt, error) {
	query := `SELECT id, exercise_id, passed_checks, total_checks, passed, duration_ms, created_at
		FROM attempts
		WHERE exercise_id = ?
		ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// Best returns the attempt with the most passing checks for an exercise,
// preferring the earliest on ties. Returns nil when nothing was recorded.
func (s *Store) Best(ctx context.Context, exerciseID string) (*Attempt, error) {
	query := `SELECT id, exercise_id, passed_checks, total_checks, passed, duration_ms, created_at
		FROM attempts
		WHERE exercise_id = ?
		ORDER BY passed_checks DESC, created_at ASC
		LIMIT 1`

	rows, err := s.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("query best attempt: %w", err)
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return attempts[0], nil
}

// Completion returns, for each exercise ever attempted, whether any attempt
// passed all checks. This is the sole signal the listing display consumes.
func (s *Store) Completion(ctx context.Context) (map[string]bool, error) {
	query := `SELECT exercise_id, MAX(passed) FROM attempts GROUP BY exercise_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query completion: %w", err)
	}
	defer rows.Close()

	completion := make(map[string]bool)
	for rows.Next() {
		var exerciseID string
		var passed bool
		if err := rows.Scan(&exerciseID, &passed); err != nil {
			return nil, fmt.Errorf("scan completion row: %w", err)
		}
		completion[exerciseID] = passed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completion rows: %w", err)
	}
	return completion, nil
}

// Stats summarizes the whole store for the progress command.
type Stats struct {
	TotalAttempts      int
	ExercisesAttempted int
	ExercisesPassed    int
}

// Stats returns aggregate counts across all attempts.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COUNT(DISTINCT exercise_id),
			COUNT(DISTINCT CASE WHEN passed THEN exercise_id END)
		FROM attempts`).
		Scan(&stats.TotalAttempts, &stats.ExercisesAttempted, &stats.ExercisesPassed)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}

// Reset deletes all recorded attempts.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}

// exportSnapshot is the JSON shape written by Export.
type exportSnapshot struct {
	ExportedAt time.Time       `json:"exported_at"`
	Stats      *Stats          `json:"stats"`
	Completion map[string]bool `json:"completion"`
}

// Export writes a JSON snapshot of completion state to path using a locked
// atomic write, so concurrent CLI runs never interleave partial output.
func (s *Store) Export(ctx context.Context, path string) error {
	stats, err := s.Stats(ctx)
	if err != nil {
		return err
	}
	completion, err := s.Completion(ctx)
	if err != nil {
		return err
	}

	snapshot := exportSnapshot{
		ExportedAt: time.Now().UTC(),
		Stats:      stats,
		Completion: completion,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// scanAttempts reads attempt rows into structs.
func scanAttempts(rows *sql.Rows) ([]*Attempt, error) {
	var attempts []*Attempt
	for rows.Next() {
		attempt := &Attempt{}
		var durationMS int64
		err := rows.Scan(
			&attempt.ID,
			&attempt.ExerciseID,
			&attempt.PassedChecks,
			&attempt.TotalChecks,
			&attempt.Passed,
			&durationMS,
			&attempt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		attempt.Duration = time.Duration(durationMS) * time.Millisecond
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempt rows: %w", err)
	}
	return attempts, nil
}
