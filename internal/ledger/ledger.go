// Package ledger persists the move records of one organize run so the run
// can be reversed later.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates no run is recorded for the directory.
var ErrNotFound = errors.New("run not found")

// Record is a single relocation: where the file ended up and where it must
// return on undo. Both paths are absolute.
type Record struct {
	Destination string
	Original    string
}

// Run is the ledger of exactly one organize invocation. Records are kept
// in the order the moves happened.
type Run struct {
	ID        int64
	RunID     string
	Directory string
	CreatedAt time.Time
	Records   []Record
}

// Store persists runs and their move records.
type Store struct {
	db *sql.DB
}

// NewStore creates a ledger store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Replace writes a run and its records, discarding any prior run for the
// same directory. The whole write is one transaction: either the new
// ledger is durable or the old one is left untouched.
func (s *Store) Replace(run *Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`DELETE FROM moves WHERE run_id IN (SELECT id FROM runs WHERE directory = ?)`,
		run.Directory,
	); err != nil {
		return fmt.Errorf("discard prior moves: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM runs WHERE directory = ?`, run.Directory); err != nil {
		return fmt.Errorf("discard prior run: %w", err)
	}

	now := time.Now()
	result, err := tx.Exec(
		`INSERT INTO runs (run_uuid, directory, moved, created_at) VALUES (?, ?, ?, ?)`,
		run.RunID, run.Directory, len(run.Records), now,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	for i, rec := range run.Records {
		if _, err := tx.Exec(
			`INSERT INTO moves (run_id, position, destination, original) VALUES (?, ?, ?, ?)`,
			id, i, rec.Destination, rec.Original,
		); err != nil {
			return fmt.Errorf("insert move %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	run.ID = id
	run.CreatedAt = now
	return nil
}

// Latest loads the undoable run for a directory with its records in move
// order. Returns ErrNotFound if no run is recorded.
func (s *Store) Latest(dir string) (*Run, error) {
	run := &Run{Directory: dir}
	err := s.db.QueryRow(
		`SELECT id, run_uuid, created_at FROM runs WHERE directory = ? ORDER BY created_at DESC LIMIT 1`,
		dir,
	).Scan(&run.ID, &run.RunID, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT destination, original FROM moves WHERE run_id = ? ORDER BY position`,
		run.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Destination, &rec.Original); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		run.Records = append(run.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}

	return run, nil
}

// Delete removes a consumed run and its records.
func (s *Store) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM moves WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("delete moves: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return tx.Commit()
}

// Exists reports whether an undoable run is recorded for the directory.
func (s *Store) Exists(dir string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE directory = ?`, dir).Scan(&n); err != nil {
		return false, fmt.Errorf("count runs: %w", err)
	}
	return n > 0, nil
}
