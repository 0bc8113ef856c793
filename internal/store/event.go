package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out one increasing sequence number shared by
// attempts and LLM events, so the two can be ordered against each other.
// Row ids are per table and cannot do that.
//
// A number is taken inside the same transaction as the row that carries
// it: a failed insert rolls the counter back and leaves no gap.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	seedSequence = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	bumpSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{createSequenceTable, seedSequence} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Insert takes the next sequence number and calls insert with it in one
// transaction. The insert's error aborts both.
func (sc *sequenceCounter) Insert(ctx context.Context, insert func(tx *sql.Tx, seq int64) error) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seq int64
	if err := tx.QueryRowContext(ctx, bumpSequence).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	if err := insert(tx, seq); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return seq, nil
}

// Next takes a number without writing a row.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	return sc.Insert(ctx, func(*sql.Tx, int64) error { return nil })
}
