package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"textlab/internal/config"
	"textlab/internal/textstats"
)

// Store manages analysis history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// ErrLocked indicates another process holds the history lock.
var ErrLocked = errors.New("history database is locked by another process")

// createdAtLayout keeps fractional seconds fixed width so lexicographic
// ordering in SQL matches chronological ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open initializes or connects to the history database, acquiring the
// workspace lock beside it.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "history.lock"))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !acquired {
		return nil, ErrLocked
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the database connection and releases the workspace lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = err
		}
	}
	return dbErr
}

// Add records one analysis result for fileName and returns the stored record.
func (s *Store) Add(ctx context.Context, fileName string, result textstats.Result) (*Record, error) {
	ctx = ensureContext(ctx)

	topWordsJSON, err := json.Marshal(result.MostCommonWords)
	if err != nil {
		return nil, fmt.Errorf("marshal top words: %w", err)
	}

	record := Record{
		ID:                uuid.NewString(),
		FileName:          fileName,
		WordCount:         result.WordCount,
		CharacterCount:    result.CharacterCount,
		SentenceCount:     result.SentenceCount,
		AverageWordLength: result.AverageWordLength,
		TopWords:          result.MostCommonWords,
		CreatedAt:         time.Now().UTC(),
	}

	err = s.execWithRetry(ctx,
		`INSERT INTO analyses (
            id, file_name, word_count, character_count, sentence_count,
            average_word_length, top_words_json, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.FileName,
		record.WordCount,
		record.CharacterCount,
		record.SentenceCount,
		record.AverageWordLength,
		string(topWordsJSON),
		record.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return &record, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file_name, word_count, character_count, sentence_count,
            average_word_length, top_words_json, created_at
        FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record       Record
			topWordsJSON string
			createdAt    string
		)
		if err := rows.Scan(
			&record.ID,
			&record.FileName,
			&record.WordCount,
			&record.CharacterCount,
			&record.SentenceCount,
			&record.AverageWordLength,
			&topWordsJSON,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		if err := json.Unmarshal([]byte(topWordsJSON), &record.TopWords); err != nil {
			return nil, fmt.Errorf("decode top words for %s: %w", record.ID, err)
		}
		if ts, err := time.Parse(createdAtLayout, createdAt); err == nil {
			record.CreatedAt = ts
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return records, nil
}

// Clear removes every record and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses")
	if err != nil {
		return 0, fmt.Errorf("clear analyses: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == 5 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = s.db.ExecContext(ctx, query, args...)
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
