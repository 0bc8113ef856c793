package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/aether/internal/careerquiz"
)

var attemptColumns = []string{
	"id", "sequence", "timestamp", "attempt_id", "answers",
	"tie_break", "normalization", "result",
}

type attemptRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	result, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("marshal attempt result: %w", err)
	}

	// a is only touched once the row is committed.
	attemptID := a.AttemptID
	if attemptID == "" {
		attemptID = uuid.NewString()
	}
	ts := a.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()

	var id int64
	seq, err := r.seq.Insert(ctx, func(tx *sql.Tx, seq int64) error {
		query, args := builder().Insert(attemptsTableName).
			Columns("sequence", "timestamp", "attempt_id", "answers", "tie_break", "normalization", "career_path", "result").
			Values(seq, ts, attemptID, a.Answers.String(),
				string(a.Config.TieBreak), string(a.Config.Normalization), string(a.Result.CareerPath), string(result)).
			Query()
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	a.ID = int(id)
	a.AttemptID = attemptID
	a.Timestamp = ts
	a.Sequence = seq
	return nil
}

func (r *attemptRepo) Latest(ctx context.Context) (*Attempt, error) {
	attempts, err := r.List(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}

func (r *attemptRepo) Get(ctx context.Context, attemptID string) (*Attempt, error) {
	query, args := builder().Select(attemptColumns...).
		From(entsql.Table(attemptsTableName)).
		Where(entsql.EQ("attempt_id", attemptID)).
		Query()

	a, err := scanAttempt(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt %s: %w", attemptID, err)
	}
	return a, nil
}

func (r *attemptRepo) List(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	var out []Attempt
	err := queryRows(ctx, r.db, selectEvents(attemptsTableName, attemptColumns, opts), func(rows *sql.Rows) error {
		a, err := scanAttempt(rows)
		if err != nil {
			return err
		}
		out = append(out, *a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.db, attemptsTableName)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	if err := execQuery(ctx, r.db, builder().Delete(attemptsTableName)); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*Attempt, error) {
	var (
		a                  Attempt
		answers, result    string
		tieBreak, normMode string
	)
	if err := row.Scan(&a.ID, &a.Sequence, &a.Timestamp, &a.AttemptID, &answers, &tieBreak, &normMode, &result); err != nil {
		return nil, err
	}

	decoded, err := careerquiz.DecodeAnswers(answers)
	if err != nil {
		return nil, err
	}
	a.Answers = decoded
	a.Config = careerquiz.Config{
		TieBreak:      careerquiz.TieBreak(tieBreak),
		Normalization: careerquiz.Normalization(normMode),
	}
	if err := json.Unmarshal([]byte(result), &a.Result); err != nil {
		return nil, fmt.Errorf("unmarshal attempt result: %w", err)
	}
	return &a, nil
}
