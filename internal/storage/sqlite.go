// Package storage provides SQLite-based persistence for the viewing history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the viewing history.
type Store struct {
	db *sql.DB
}

// ViewEntry records one viewing of a match log.
type ViewEntry struct {
	ID          int64
	LogPath     string
	Frames      int
	LastTick    int
	WatchedSecs int
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			log_path TEXT NOT NULL,
			frames INTEGER NOT NULL,
			last_tick INTEGER NOT NULL,
			watched_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_views_log_path ON views(log_path);
		CREATE INDEX IF NOT EXISTS idx_views_recent ON views(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordView stores one viewing of a match log.
// Returns the ID of the inserted record.
func (s *Store) RecordView(logPath string, frames, lastTick, watchedSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO views (log_path, frames, last_tick, watched_secs) VALUES (?, ?, ?, ?)",
		logPath, frames, lastTick, watchedSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record view: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentViews retrieves the most recently watched logs, newest first.
func (s *Store) RecentViews(limit int) ([]ViewEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, log_path, frames, last_tick, watched_secs, created_at
		 FROM views
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query views: %w", err)
	}
	defer rows.Close()

	var entries []ViewEntry
	for rows.Next() {
		e, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ViewCount returns how many times the given log has been watched.
func (s *Store) ViewCount(logPath string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM views WHERE log_path = ?",
		logPath,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count views: %w", err)
	}
	return count, nil
}

// ClearHistory deletes all recorded views.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM views"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// scanView reads one row into a ViewEntry, handling both time.Time and
// string datetime representations returned by the driver.
func scanView(rows *sql.Rows) (ViewEntry, error) {
	var e ViewEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.LogPath, &e.Frames, &e.LastTick, &e.WatchedSecs, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
