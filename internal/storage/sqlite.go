// Package storage keeps a local log of cleared levels in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the database location used when none is configured.
const DefaultPath = "~/.streamline/streamline.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Completion is one cleared level.
type Completion struct {
	ID        int64
	RunID     string // groups the completions of one play session
	LevelID   string
	Moves     int
	Undos     int
	CreatedAt time.Time
}

// LevelStat summarises the completions of one level.
type LevelStat struct {
	LevelID    string
	Clears     int
	BestMoves  int
	LastPlayed time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			undos INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(level_id, moves);
		CREATE INDEX IF NOT EXISTS idx_completions_run ON completions(run_id);
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

// SaveCompletion records a cleared level and returns the new record ID.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	if c.LevelID == "" {
		return 0, fmt.Errorf("storage: completion without level id")
	}
	if c.RunID == "" {
		c.RunID = NewRunID()
	}

	result, err := s.db.Exec(
		"INSERT INTO completions (run_id, level_id, moves, undos) VALUES (?, ?, ?, ?)",
		c.RunID, c.LevelID, c.Moves, c.Undos,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestCompletions returns the fewest-move completions of a level.
// Ties go to fewer undos, then to the earlier record.
func (s *Store) BestCompletions(levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryCompletions(
		`SELECT id, run_id, level_id, moves, undos, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY moves ASC, undos ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RunCompletions returns the completions of one run in the order they happened.
func (s *Store) RunCompletions(runID string) ([]Completion, error) {
	return s.queryCompletions(
		`SELECT id, run_id, level_id, moves, undos, created_at
		 FROM completions
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
}

func (s *Store) queryCompletions(query string, args ...any) ([]Completion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.LevelID, &c.Moves, &c.Undos, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestMoves returns the fewest moves any completion of the level took.
func (s *Store) BestMoves(levelID string) (int, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// LevelStats summarises every level with at least one completion, ordered
// by level ID.
func (s *Store) LevelStats() ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MAX(created_at)
		 FROM completions
		 GROUP BY level_id
		 ORDER BY level_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		var st LevelStat
		var last any
		if err := rows.Scan(&st.LevelID, &st.Clears, &st.BestMoves, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.LastPlayed = parseTime(last)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearLevel removes every completion of a level and returns how many
// were deleted.
func (s *Store) ClearLevel(levelID string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM completions WHERE level_id = ?", levelID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear level: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// parseTime handles both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
