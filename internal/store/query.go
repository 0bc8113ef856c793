package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// selectEvents starts a newest-first query over table filtered by opts.
func selectEvents(table string, columns []string, opts QueryOpts) *entsql.Selector {
	s := builder().Select(columns...).From(entsql.Table(table))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if len(preds) > 0 {
		s.Where(entsql.And(preds...))
	}

	s.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		s.Limit(opts.Limit)
	}
	return s
}

type querier interface {
	Query() (string, []any)
}

func execQuery(ctx context.Context, db *sql.DB, q querier) error {
	query, args := q.Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

// queryRows runs q and calls scan for every row.
func queryRows(ctx context.Context, db *sql.DB, q querier, scan func(*sql.Rows) error) error {
	query, args := q.Query()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	return rows.Err()
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	query, args := builder().Select(entsql.Count("*")).From(entsql.Table(table)).Query()
	var n int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
