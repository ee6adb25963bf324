// Package storage provides SQLite-based persistence for finished games.
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

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameEntry represents one finished game.
type GameEntry struct {
	ID         int64
	GameID     string
	FinalRound int
	Completed  int // Rounds fully reproduced
	Record     int
	SpeedMs    int64
	EndReason  string // "mismatch" or "aborted"
	Duration   int    // Duration in seconds
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			final_round INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			record INTEGER NOT NULL DEFAULT 0,
			speed_ms INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(final_round DESC);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
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

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(entry GameEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (game_id, final_round, completed, record, speed_ms, end_reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.GameID,
		entry.FinalRound,
		entry.Completed,
		entry.Record,
		entry.SpeedMs,
		entry.EndReason,
		entry.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordResult implements simon.ResultRecorder.
// Games that never got past the first playback are not worth keeping.
func (s *Store) RecordResult(r simon.Result) error {
	if r.GameID == "" || r.FinalRound == 0 {
		return nil
	}
	_, err := s.SaveGame(GameEntry{
		GameID:     r.GameID,
		FinalRound: r.FinalRound,
		Completed:  r.Completed,
		Record:     r.Record,
		SpeedMs:    r.Speed.Milliseconds(),
		EndReason:  string(r.Reason),
		Duration:   int(r.Duration.Seconds()),
	})
	return err
}

// Ensure Store implements ResultRecorder
var _ simon.ResultRecorder = (*Store)(nil)

// TopGames retrieves the N games that reached the highest round.
func (s *Store) TopGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, game_id, final_round, completed, record, speed_ms, end_reason, duration_secs, created_at
		 FROM games
		 ORDER BY final_round DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentGames retrieves the most recently finished games.
func (s *Store) RecentGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, game_id, final_round, completed, record, speed_ms, end_reason, duration_secs, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// GameByID retrieves a game by its engine game ID.
// Returns nil without error when no such game exists.
func (s *Store) GameByID(gameID string) (*GameEntry, error) {
	var e GameEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, final_round, completed, record, speed_ms, end_reason, duration_secs, created_at
		 FROM games
		 WHERE game_id = ?`,
		gameID,
	).Scan(&e.ID, &e.GameID, &e.FinalRound, &e.Completed, &e.Record, &e.SpeedMs, &e.EndReason, &e.Duration, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

func (s *Store) queryGames(query string, args ...any) ([]GameEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.FinalRound, &e.Completed, &e.Record, &e.SpeedMs, &e.EndReason, &e.Duration, &createdAt); err != nil {
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

// BestRound returns the highest round ever reached.
// Returns 0 if no games exist.
func (s *Store) BestRound() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(final_round) FROM games").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best round: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// ClearGames deletes the whole history.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all games.
type Stats struct {
	GamesCount int
	BestRound  int
	AvgRound   float64
	Aborted    int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(final_round), 0), COALESCE(AVG(final_round), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'aborted' THEN 1 ELSE 0 END), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.BestRound, &stats.AvgRound, &stats.Aborted)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM games ORDER BY created_at DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
