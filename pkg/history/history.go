// Package history persists run summaries to a local SQLite database so
// successive smoke-test runs against the same backend can be compared.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"rtcheck/pkg/runner"
)

// Store wraps the SQLite database holding past runs.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		base_url TEXT NOT NULL,
		total_tests INTEGER NOT NULL,
		passed_tests INTEGER NOT NULL,
		failed_tests INTEGER NOT NULL,
		success_rate REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		success BOOLEAN NOT NULL,
		details TEXT,
		timestamp DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create history schema: %w", err)
	}
	return nil
}

// SaveRun stores one run summary with its per-probe results and returns
// the new run's id.
func (s *Store) SaveRun(sum runner.Summary) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, base_url, total_tests, passed_tests, failed_tests, success_rate)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sum.Timestamp, sum.BaseURL,
		sum.Totals.TotalTests, sum.Totals.PassedTests,
		sum.Totals.FailedTests, sum.Totals.SuccessRate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read run id: %w", err)
	}

	for _, o := range sum.Results {
		_, err := tx.Exec(
			`INSERT INTO results (run_id, name, success, details, timestamp)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, o.Name, o.Success, o.Details, o.Timestamp,
		)
		if err != nil {
			return 0, fmt.Errorf("insert result %q: %w", o.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit history transaction: %w", err)
	}
	return runID, nil
}

// RunRecord is one stored run.
type RunRecord struct {
	ID          int64
	Timestamp   time.Time
	BaseURL     string
	TotalTests  int
	PassedTests int
	FailedTests int
	SuccessRate float64
}

// RecentRuns returns up to limit stored runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, base_url, total_tests, passed_tests, failed_tests, success_rate
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.BaseURL,
			&rec.TotalTests, &rec.PassedTests, &rec.FailedTests, &rec.SuccessRate); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
