// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every write runs in its own short transaction and follows the same shape:
// check referenced rows exist, run the mutating statement, inspect the
// affected-row count, then commit, or roll back and return a typed
// not-found error from the errs package.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DB is the storage boundary the repository is written against.
//
// *pgxpool.Pool satisfies it in production; tests substitute pgxmock.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowQuerier is the subset of DB and pgx.Tx used by existence checks.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is implemented by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// inTx runs fn inside a transaction. The transaction is committed exactly
// once when fn succeeds and rolled back on any error, including not-found.
// Driver errors are returned as they came from pgx; op only tags the log.
func inTx(ctx context.Context, db DB, logger *zerolog.Logger, op string, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		logger.Debug().Err(err).Str("operation", op).Msg("begin transaction failed")
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Warn().
				Err(rbErr).
				Str("operation", op).
				Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Debug().Err(err).Str("operation", op).Msg("commit failed")
		return err
	}

	return nil
}

// exists runs an id lookup and reports pgx.ErrNoRows as (false, nil).
func exists(ctx context.Context, q rowQuerier, query string, id int64) (bool, error) {
	var found int64
	err := q.QueryRow(ctx, query, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
