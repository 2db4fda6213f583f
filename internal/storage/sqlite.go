// Package storage provides SQLite-based persistence for the console.
// The slots table is the console's byte-addressable high-score memory; the
// sessions table keeps a history of finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SlotCount is the number of addressable byte slots.
const SlotCount = 256

// ErrSlotRange is returned for a slot outside [0, SlotCount).
var ErrSlotRange = errors.New("storage: slot out of range")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one finished session.
type SessionEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated session statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS slots (
			slot INTEGER PRIMARY KEY,
			value INTEGER NOT NULL CHECK (value BETWEEN 0 AND 255)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC);
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

// ReadSlot returns the byte stored in slot. An unwritten slot reads as 0.
func (s *Store) ReadSlot(slot int) (byte, error) {
	if slot < 0 || slot >= SlotCount {
		return 0, fmt.Errorf("%w: %d", ErrSlotRange, slot)
	}

	var v int
	err := s.db.QueryRow("SELECT value FROM slots WHERE slot = ?", slot).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read slot %d: %w", slot, err)
	}
	return byte(v), nil
}

// WriteSlot stores v in slot.
func (s *Store) WriteSlot(slot int, v byte) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("%w: %d", ErrSlotRange, slot)
	}

	_, err := s.db.Exec(
		`INSERT INTO slots (slot, value) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value`,
		slot, int(v),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write slot %d: %w", slot, err)
	}
	return nil
}

// RecordSession stores a finished session.
func (s *Store) RecordSession(gameID string, score int, at time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (game_id, score, created_at) VALUES (?, ?, ?)",
		gameID, score, at.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record session: %w", err)
	}
	return nil
}

// TopSessions retrieves the top N sessions for the given game.
// Results are ordered by score descending.
func (s *Store) TopSessions(gameID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// RecentSessions retrieves the most recent sessions across all games.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]SessionEntry, error) {
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated session statistics for a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearGame resets a game's high-score slot and deletes its sessions.
func (s *Store) ClearGame(gameID string, slot int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM slots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear slot %d: %w", slot, err)
	}
	if _, err := tx.Exec("DELETE FROM sessions WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// ClearAll wipes every slot and the whole session history.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec("DELETE FROM slots; DELETE FROM sessions;"); err != nil {
		return fmt.Errorf("storage: cannot clear database: %w", err)
	}
	return nil
}

// timeLayout is fixed width so created_at sorts and aggregates as text.
const timeLayout = "2006-01-02 15:04:05.000000000"

// parseTime handles both time.Time and the string forms SQLite hands back.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{
			timeLayout,
			"2006-01-02 15:04:05.999999999 -0700 MST",
			"2006-01-02 15:04:05.999999999-07:00",
			time.RFC3339Nano,
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
