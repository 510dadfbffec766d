// Package storage provides SQLite-based persistence for run results.
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

// Run outcomes stored in the database.
const (
	OutcomeVictory  = "victory"
	OutcomeGameOver = "gameover"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished run.
type RunEntry struct {
	ID             int64
	Difficulty     string
	Player         string
	DurationMillis int64
	Outcome        string // OutcomeVictory or OutcomeGameOver
	CreatedAt      time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(difficulty, outcome, duration_ms ASC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	if entry.Outcome != OutcomeVictory && entry.Outcome != OutcomeGameOver {
		return 0, fmt.Errorf("storage: invalid outcome %q", entry.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (difficulty, player, duration_ms, outcome) VALUES (?, ?, ?, ?)",
		entry.Difficulty, entry.Player, entry.DurationMillis, entry.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the top N victory runs for the given difficulty,
// fastest first. Lower duration is better; gameover runs never rank.
func (s *Store) BestTimes(difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, player, duration_ms, outcome, created_at
		 FROM runs
		 WHERE difficulty = ? AND outcome = ?
		 ORDER BY duration_ms ASC
		 LIMIT ?`,
		difficulty, OutcomeVictory, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestTime returns the fastest victory time in milliseconds for the given
// difficulty. Returns 0 if no victories exist.
func (s *Store) BestTime(difficulty string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM runs WHERE difficulty = ? AND outcome = ?",
		difficulty, OutcomeVictory,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Int64, nil
}

// RecentRuns retrieves the most recent runs across all difficulties,
// regardless of outcome.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, player, duration_ms, outcome, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// PlayerBestTimes retrieves the top N victory runs for one player at the
// given difficulty, fastest first.
func (s *Store) PlayerBestTimes(player, difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, player, duration_ms, outcome, created_at
		 FROM runs
		 WHERE player = ? AND difficulty = ? AND outcome = ?
		 ORDER BY duration_ms ASC
		 LIMIT ?`,
		player, difficulty, OutcomeVictory, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player best times: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ClearRuns deletes all runs for the given difficulty.
func (s *Store) ClearRuns(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated statistics for one difficulty tier.
type DifficultyStats struct {
	Difficulty string
	RunCount   int
	Victories  int
	BestMillis int64 // 0 when no victories exist
	AvgMillis  float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(difficulty string) (*DifficultyStats, error) {
	stats := &DifficultyStats{Difficulty: difficulty}

	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COUNT(CASE WHEN outcome = ? THEN 1 END),
		        MIN(CASE WHEN outcome = ? THEN duration_ms END),
		        AVG(CASE WHEN outcome = ? THEN duration_ms END)
		 FROM runs WHERE difficulty = ?`,
		OutcomeVictory, OutcomeVictory, OutcomeVictory, difficulty,
	).Scan(&stats.RunCount, &stats.Victories, &best, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if best.Valid {
		stats.BestMillis = best.Int64
	}
	if avg.Valid {
		stats.AvgMillis = avg.Float64
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE difficulty = ? ORDER BY id DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// scanRuns reads run rows produced by one of the SELECT queries above.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Player, &e.DurationMillis, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text datetime format.
func parseTimestamp(v any) time.Time {
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
