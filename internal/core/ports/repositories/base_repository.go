package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management.
// Implementations bind the current publisher from the context to the
// transaction before handing it out, so every statement inside runs under
// that tenant's row visibility. Begin fails when no publisher context is
// present.
type TransactionManager interface {
	// Begin starts a new tenant-bound database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction. Deferred uniqueness violations
	// surface here as conflict errors.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryWithTx is a marker interface for repositories that support transactions
type RepositoryWithTx interface {
	TransactionManager
}
