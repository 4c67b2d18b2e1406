package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
)

// BaseRepository holds the shared connection pool for all pgsql repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a transaction, committing when fn succeeds and
// rolling back otherwise. Rollback after a successful commit is a no-op.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
