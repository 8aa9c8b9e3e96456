package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"codeberg.org/atelier/server/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a pgx connection pool tuned for the hosted pooler.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// the hosted free tier exposes only a handful of pooler connections,
	// so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements;
	// the simple protocol avoids hung connections behind the pooler
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// TranslateError maps a driver error onto the fixed storage-code set so the
// classifier can dispatch on the code instead of driver types. nil passes
// through; unrecognized errors come back wrapped with the operation only.
func TranslateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewStorageError("not-found", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperrors.NewStorageError(codeForPgError(pgErr), op, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewStorageError("unavailable", op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func codeForPgError(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.Code == "23505": // unique_violation
		return "already-exists"
	case pgErr.Code == "42501": // insufficient_privilege
		return "permission-denied"
	case pgErr.Code == "40001" || pgErr.Code == "40P01": // serialization failure, deadlock
		return "aborted"
	case strings.HasPrefix(pgErr.Code, "53"): // insufficient resources
		return "resource-exhausted"
	case strings.HasPrefix(pgErr.Code, "08"): // connection exceptions
		return "unavailable"
	case strings.HasPrefix(pgErr.Code, "23"): // other integrity violations
		return "failed-precondition"
	default:
		// unexpected database failure; surfaces as the generic
		// "Unknown database error" response
		return "data-loss"
	}
}
