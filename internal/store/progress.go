package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// progressRepo implements ProgressRepo on SQLite.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Level(ctx context.Context, app string) (int, error) {
	query, args := sqlite().
		Select("level").
		From(entsql.Table(ProgressTable.Name)).
		Where(entsql.EQ("app", app)).
		Query()

	var level int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, &PersistenceError{Op: "get level", Err: err}
	}
	return level, nil
}

func (r *progressRepo) SetLevel(ctx context.Context, app string, level int) error {
	query, args := sqlite().
		Insert(ProgressTable.Name).
		Columns("app", "level", "updated_at").
		Values(app, level, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("app"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &PersistenceError{Op: "set level", Err: err}
	}
	return nil
}

func (r *progressRepo) CrownCount(ctx context.Context, ledger string) (int, error) {
	n, err := crownCount(ctx, r.db, ledger)
	if err != nil {
		return 0, &PersistenceError{Op: "get crowns", Err: err}
	}
	return n, nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func crownCount(ctx context.Context, q queryRower, ledger string) (int, error) {
	query, args := sqlite().
		Select("count").
		From(entsql.Table(CrownLedgersTable.Name)).
		Where(entsql.EQ("ledger", ledger)).
		Query()

	var n int
	err := q.QueryRowContext(ctx, query, args...).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (r *progressRepo) AddCrowns(ctx context.Context, ledger string, n int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &PersistenceError{Op: "add crowns", Err: err}
	}
	defer tx.Rollback()

	current, err := crownCount(ctx, tx, ledger)
	if err != nil {
		return 0, &PersistenceError{Op: "add crowns", Err: err}
	}
	total := current + n

	query, args := sqlite().
		Insert(CrownLedgersTable.Name).
		Columns("ledger", "count", "updated_at").
		Values(ledger, total, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("ledger"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, &PersistenceError{Op: "add crowns", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return 0, &PersistenceError{Op: "add crowns", Err: err}
	}
	return total, nil
}

func (r *progressRepo) Levels(ctx context.Context) (map[string]int, error) {
	query, args := sqlite().
		Select("app", "level").
		From(entsql.Table(ProgressTable.Name)).
		Query()
	out, err := scanPairs(ctx, r.db, query, args)
	if err != nil {
		return nil, &PersistenceError{Op: "list levels", Err: err}
	}
	return out, nil
}

func (r *progressRepo) Crowns(ctx context.Context) (map[string]int, error) {
	query, args := sqlite().
		Select("ledger", "count").
		From(entsql.Table(CrownLedgersTable.Name)).
		Query()
	out, err := scanPairs(ctx, r.db, query, args)
	if err != nil {
		return nil, &PersistenceError{Op: "list crowns", Err: err}
	}
	return out, nil
}

func scanPairs(ctx context.Context, db *sql.DB, query string, args []any) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var key string
		var val int
		if err := rows.Scan(&key, &val); err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, rows.Err()
}

func (r *progressRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "reset", Err: err}
	}
	defer tx.Rollback()

	for _, t := range Tables {
		query, args := sqlite().Delete(t.Name).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return &PersistenceError{Op: "reset " + t.Name, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "reset", Err: err}
	}
	return nil
}
