// Package history keeps a SQLite ledger of committed distributions, so the
// user can see where past budgets went.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/wishsplit/internal/engine"
	"github.com/theirongolddev/wishsplit/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// LedgerFileName is the ledger database file name inside the data dir.
const LedgerFileName = "history.db"

// Ledger is a SQLite-backed record of committed distributions.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Allocation is one category's share within a recorded commit.
type Allocation struct {
	Category  string
	Allocated model.Money
}

// Entry is one committed distribution.
type Entry struct {
	ID          int64
	CommittedAt time.Time
	Budget      model.Money
	Unallocated model.Money
	Allocations []Allocation
}

// RecordCommit stores a committed distribution and its category envelopes.
func (l *Ledger) RecordCommit(res engine.Result, at time.Time) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Exec(
		"INSERT INTO commits (committed_at, budget, unallocated) VALUES (?, ?, ?)",
		at.UTC().Format(time.RFC3339), res.Budget, res.Unallocated,
	)
	if err != nil {
		return err
	}
	commitID, err := row.LastInsertId()
	if err != nil {
		return err
	}

	for _, a := range res.Allocations {
		if a.Allocated <= 0 {
			continue
		}
		_, err = tx.Exec(
			"INSERT INTO commit_allocations (commit_id, category, allocated) VALUES (?, ?, ?)",
			commitID, a.Name, a.Allocated,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Recent returns the most recent entries, newest first, with their
// per-category allocations attached.
func (l *Ledger) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		"SELECT id, committed_at, budget, unallocated FROM commits ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	idx := make(map[int64]int)
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Budget, &e.Unallocated); err != nil {
			return nil, err
		}
		e.CommittedAt, _ = time.Parse(time.RFC3339, at)
		idx[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	allocRows, err := l.db.Query(
		`SELECT commit_id, category, allocated FROM commit_allocations
		 WHERE commit_id >= ? ORDER BY commit_id DESC, rowid`,
		entries[len(entries)-1].ID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = allocRows.Close() }()

	for allocRows.Next() {
		var commitID int64
		var a Allocation
		if err := allocRows.Scan(&commitID, &a.Category, &a.Allocated); err != nil {
			return nil, err
		}
		if i, ok := idx[commitID]; ok {
			entries[i].Allocations = append(entries[i].Allocations, a)
		}
	}
	return entries, allocRows.Err()
}

// CommitCount returns the number of recorded commits.
func (l *Ledger) CommitCount() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM commits").Scan(&count)
	return count, err
}
