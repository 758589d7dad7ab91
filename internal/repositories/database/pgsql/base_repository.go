package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/pkg/tenantctx"
)

// publisherGUC is the session variable the row-level security policies
// read. It is set transaction-locally, so the binding can never outlive
// the transaction or leak to another pooled connection.
const publisherGUC = "app.current_publisher_id"

// BaseRepository provides common functionality for all repositories.
// Every catalog transaction it opens is bound to the publisher carried by
// the context; without one, Begin fails closed.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new tenant-bound database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	publisherID, ok := tenantctx.PublisherID(ctx)
	if !ok {
		return nil, apperrors.ErrNoPublisherContext
	}
	return r.beginAs(ctx, publisherID)
}

// beginAs starts a transaction bound to an explicit publisher ID. Used by
// publisher provisioning, where the tenant being written does not exist
// until the insert commits.
func (r *BaseRepository) beginAs(ctx context.Context, publisherID string) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// true makes the setting transaction-local: it vanishes on commit or
	// rollback regardless of how the transaction ends.
	if _, err := tx.Exec(ctx, "SELECT set_config($1, $2, true)", publisherGUC, publisherID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, apperrors.NewAppError(500, "failed to bind publisher context", err)
	}
	return tx, nil
}

// Commit commits a transaction. Deferred per-tenant uniqueness constraints
// fire here, so unique violations surface as conflicts.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("uniqueness violated at commit: " + pgErr.ConstraintName)
		}
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// withTenantTx runs fn inside a tenant-bound transaction and commits on
// success.
func (r *BaseRepository) withTenantTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = r.Rollback(ctx, tx)
		return err
	}
	return r.Commit(ctx, tx)
}

// mapPgError translates common Postgres error codes into application
// errors. Errors already shaped by the repository pass through unchanged.
func mapPgError(err error, action string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.NewConflictError("duplicate value violates " + pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return apperrors.NewValidationFailedError("referenced row does not exist: " + pgErr.ConstraintName)
		case "23514": // check_violation
			return apperrors.NewValidationFailedError("value violates " + pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(500, "failed to "+action, err)
}
