// Package history keeps a SQLite record of every answer the CLI produced.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/aoc/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one stored answer.
type Entry struct {
	ID         int64
	RunID      string
	Day        int
	Part       int
	InputPath  string
	Result     uint64
	ValueCount int
	Duration   time.Duration
	SolvedAt   time.Time
}

// Store manages the answer history database
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and creates if needed) the database at dbPath.
// ":memory:" opens a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database lives only as long as its connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
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

// execWithRetry executes a statement, backing off on "database is locked".
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

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores answer. A missing RunID or SolvedAt is filled in, and the
// stored values are written back to answer.
func (s *Store) Record(ctx context.Context, answer *models.Answer) error {
	if answer.RunID == "" {
		answer.RunID = uuid.New().String()
	}
	if answer.SolvedAt.IsZero() {
		answer.SolvedAt = time.Now().UTC()
	}

	query := `INSERT INTO answers
		(run_id, day, part, input_path, result, value_count, duration_ms, solved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		answer.RunID,
		answer.Day,
		answer.Part,
		answer.InputPath,
		strconv.FormatUint(answer.Result, 10),
		answer.Count(),
		answer.Duration.Milliseconds(),
		answer.SolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, at most limit of them.
// A limit of 0 or less returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, run_id, day, part, input_path, result, value_count, duration_ms, solved_at
		FROM answers
		ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// ForDay returns the entries of a single day, newest first, at most limit
// of them. A limit of 0 or less returns everything.
func (s *Store) ForDay(ctx context.Context, day int, limit int) ([]Entry, error) {
	query := `SELECT id, run_id, day, part, input_path, result, value_count, duration_ms, solved_at
		FROM answers
		WHERE day = ?
		ORDER BY id DESC`
	args := []any{day}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var result string
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Day, &e.Part, &e.InputPath, &result, &e.ValueCount, &durationMs, &e.SolvedAt); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		e.Result, err = strconv.ParseUint(result, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("answer %d: invalid result %q: %w", e.ID, result, err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return entries, nil
}
