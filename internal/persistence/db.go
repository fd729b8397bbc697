// Package persistence provides SQLite-based run-record storage for the
// host. The engine core has no storage dependency; the host logs each
// run, its phase transitions, and the final statistics here.
package persistence

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/tsunami-sim/internal/engine"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		magnitude REAL NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		sim_time_ms REAL NOT NULL DEFAULT 0,
		population INTEGER NOT NULL DEFAULT 0,
		casualties INTEGER NOT NULL DEFAULT 0,
		survivors INTEGER NOT NULL DEFAULT 0,
		buildings_destroyed INTEGER NOT NULL DEFAULT 0,
		vehicles_destroyed INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS phase_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		phase TEXT NOT NULL,
		sim_time_ms REAL NOT NULL,
		fact TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_phase_log_run ON phase_log(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// BeginRun records a new run before stepping starts.
func (db *DB) BeginRun(runID string, seed int64, magnitude float64) error {
	_, err := db.conn.Exec(
		`INSERT INTO runs (id, seed, magnitude, started_at) VALUES (?, ?, ?, ?)`,
		runID, seed, magnitude, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// LogPhase appends a phase transition to the run's timeline.
func (db *DB) LogPhase(runID string, phase string, simTimeMs float64, fact string) error {
	_, err := db.conn.Exec(
		`INSERT INTO phase_log (run_id, phase, sim_time_ms, fact) VALUES (?, ?, ?, ?)`,
		runID, phase, simTimeMs, fact,
	)
	if err != nil {
		return fmt.Errorf("log phase: %w", err)
	}
	return nil
}

// FinishRun writes the final statistics for a completed run.
func (db *DB) FinishRun(runID string, st *engine.State, population int) error {
	_, err := db.conn.Exec(
		`UPDATE runs SET finished_at = ?, sim_time_ms = ?, population = ?,
			casualties = ?, survivors = ?, buildings_destroyed = ?, vehicles_destroyed = ?
		 WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), st.Time, population,
		st.Stats.Casualties, st.Stats.Survivors,
		st.Stats.BuildingsDestroyed, st.Stats.VehiclesDestroyed,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}
