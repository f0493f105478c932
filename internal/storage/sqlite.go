// Package storage provides SQLite-based persistence for match history.
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

	"github.com/vovakirdan/seabattle/internal/battle"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match as stored.
type MatchRecord struct {
	ID         int64
	MatchID    string
	PlayerA    string
	PlayerB    string
	Winner     string
	WinnerSide string // "A" or "B"
	ShotsA     int
	ShotsB     int
	HitsA      int
	HitsB      int
	RestartsA  int
	RestartsB  int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Accuracy returns the share of shots by the winner that hit, 0 to 1.
func (r MatchRecord) Accuracy() float64 {
	shots, hits := r.ShotsA, r.HitsA
	if r.WinnerSide == battle.SideB.String() {
		shots, hits = r.ShotsB, r.HitsB
	}
	if shots == 0 {
		return 0
	}
	return float64(hits) / float64(shots)
}

// WinTotal counts matches won by one player name.
type WinTotal struct {
	Name   string
	Wins   int
	Played int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player_a TEXT NOT NULL,
			player_b TEXT NOT NULL,
			winner TEXT NOT NULL,
			winner_side TEXT NOT NULL,
			shots_a INTEGER NOT NULL DEFAULT 0,
			shots_b INTEGER NOT NULL DEFAULT 0,
			hits_a INTEGER NOT NULL DEFAULT 0,
			hits_b INTEGER NOT NULL DEFAULT 0,
			restarts_a INTEGER NOT NULL DEFAULT 0,
			restarts_b INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match and returns the row ID.
func (s *Store) SaveMatch(res battle.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (match_id, player_a, player_b, winner, winner_side,
		                      shots_a, shots_b, hits_a, hits_b, restarts_a, restarts_b, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.MatchID,
		res.Names[battle.SideA], res.Names[battle.SideB],
		res.WinnerName(), res.Winner.String(),
		res.Shots[battle.SideA], res.Shots[battle.SideB],
		res.Hits[battle.SideA], res.Hits[battle.SideB],
		res.Restarts[battle.SideA], res.Restarts[battle.SideB],
		res.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match %s: %w", res.MatchID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const matchColumns = `id, match_id, player_a, player_b, winner, winner_side,
	shots_a, shots_b, hits_a, hits_b, restarts_a, restarts_b, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var r MatchRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(
		&r.ID, &r.MatchID, &r.PlayerA, &r.PlayerB, &r.Winner, &r.WinnerSide,
		&r.ShotsA, &r.ShotsB, &r.HitsA, &r.HitsB, &r.RestartsA, &r.RestartsB,
		&durationMS, &createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning either time.Time or text.
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

// MatchByID retrieves a match by its match ID, or nil if it is unknown.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	r, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// WinTotals returns wins and matches played per player name, most wins first.
func (s *Store) WinTotals() ([]WinTotal, error) {
	rows, err := s.db.Query(
		`SELECT name, SUM(won), COUNT(*) FROM (
			SELECT player_a AS name, winner_side = 'A' AS won FROM matches
			UNION ALL
			SELECT player_b AS name, winner_side = 'B' AS won FROM matches
		 )
		 GROUP BY name
		 ORDER BY SUM(won) DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query win totals: %w", err)
	}
	defer rows.Close()

	var totals []WinTotal
	for rows.Next() {
		var w WinTotal
		if err := rows.Scan(&w.Name, &w.Wins, &w.Played); err != nil {
			return nil, fmt.Errorf("storage: cannot scan totals row: %w", err)
		}
		totals = append(totals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return totals, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
