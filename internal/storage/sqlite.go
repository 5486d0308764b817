// Package storage persists finished runs and their day-by-day takings in
// SQLite. The driver is pure Go (modernc.org/sqlite), so builds stay
// CGO-free.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/bryomx12/farmstand/internal/session"
)

// Store is a handle on the runs database. It is safe for concurrent use;
// database/sql pools connections underneath.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished run record.
type RunEntry struct {
	ID        int64
	Mode      string
	Player    string
	Days      int
	Money     int
	Customers int
	EndReason string
	CreatedAt time.Time
}

// DayEntry represents one day's takings within a stored run.
type DayEntry struct {
	ID     int64
	RunID  int64
	Day    int
	Earned int
	Served int
}

// Open opens the runs database at the given path, creating the file, its
// parent directories, and the schema as needed. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create db directory: %w", err)
	}

	// busy_timeout smooths over write contention when SSH sessions share
	// the store; foreign_keys keeps day records attached to real runs.
	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}
	return store, nil
}

// expandPath resolves a leading ~ against the home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %q: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate applies the schema. Every statement is idempotent, so this runs
// on every open.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			days INTEGER NOT NULL,
			money INTEGER NOT NULL,
			customers INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, money DESC);

		CREATE TABLE IF NOT EXISTS day_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			day INTEGER NOT NULL,
			earned INTEGER NOT NULL,
			served INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_day_records_run ON day_records(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(sum session.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (mode, player, days, money, customers, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sum.Mode, sum.Player, sum.Days, sum.Money, sum.Customers, sum.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: read inserted run id: %w", err)
	}

	return id, nil
}

// SaveDays records the per-day breakdown for a previously saved run.
// All days are written in one transaction.
func (s *Store) SaveDays(runID int64, days []session.DayRecord) error {
	if len(days) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin day insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.Prepare(
		"INSERT INTO day_records (run_id, day, earned, served) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: prepare day insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		if _, err := stmt.Exec(runID, d.Day, d.Earned, d.Served); err != nil {
			return fmt.Errorf("storage: insert day %d: %w", d.Day, err)
		}
	}

	return tx.Commit()
}

// The TUI records finished runs through this interface.
var _ session.Recorder = (*Store)(nil)

// TopRuns retrieves the top N runs for the given mode.
// Results are ordered by money banked, richest first.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, days, money, customers, end_reason, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY money DESC, days DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all modes.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, days, money, customers, end_reason, created_at
		 FROM runs
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads run rows into entries.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Mode, &e.Player, &e.Days, &e.Money,
			&e.Customers, &e.EndReason, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		e.CreatedAt = parseTimeValue(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate rows: %w", err)
	}

	return entries, nil
}

// parseTimeValue parses a datetime column that may arrive as time.Time or
// as a string, depending on how the row was written.
func parseTimeValue(v any) time.Time {
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

// BestMoney returns the highest money banked for the given mode.
// Returns 0 if no runs exist.
func (s *Store) BestMoney(mode string) (int, error) {
	var money sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(money) FROM runs WHERE mode = ?",
		mode,
	).Scan(&money)

	if err != nil {
		return 0, fmt.Errorf("storage: query best money: %w", err)
	}

	if !money.Valid {
		return 0, nil
	}

	return int(money.Int64), nil
}

// DaysForRun retrieves the per-day breakdown of a stored run, in day order.
func (s *Store) DaysForRun(runID int64) ([]DayEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, day, earned, served
		 FROM day_records
		 WHERE run_id = ?
		 ORDER BY day ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query day records: %w", err)
	}
	defer rows.Close()

	var entries []DayEntry
	for rows.Next() {
		var e DayEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Day, &e.Earned, &e.Served); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate rows: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all runs and their day records for the given mode.
func (s *Store) ClearRuns(mode string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin clear: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(
		"DELETE FROM day_records WHERE run_id IN (SELECT id FROM runs WHERE mode = ?)",
		mode,
	); err != nil {
		return fmt.Errorf("storage: delete day records: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: delete runs: %w", err)
	}

	return tx.Commit()
}

// ModeStats contains aggregated statistics for a game mode.
type ModeStats struct {
	Mode        string
	RunsCount   int
	BestMoney   int
	AvgMoney    float64
	TotalServed int64
	LastPlayed  time.Time
}

// RunStats retrieves aggregated statistics for a specific mode.
func (s *Store) RunStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(money), 0), COALESCE(AVG(money), 0), COALESCE(SUM(customers), 0)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.BestMoney, &stats.AvgMoney, &stats.TotalServed)
	if err != nil {
		return nil, fmt.Errorf("storage: query run stats: %w", err)
	}

	// The newest created_at doubles as last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: query last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimeValue(lastPlayed)
	}

	return stats, nil
}

// AllRunStats retrieves statistics for every mode that has recorded runs.
func (s *Store) AllRunStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(money), AVG(money), SUM(customers), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.RunsCount, &m.BestMoney, &m.AvgMoney, &m.TotalServed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: scan stats row: %w", err)
		}
		m.LastPlayed = parseTimeValue(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate rows: %w", err)
	}

	return stats, nil
}
