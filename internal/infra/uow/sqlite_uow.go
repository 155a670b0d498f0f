package uow

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"agora-exchange/internal/infra/repository"
	"agora-exchange/internal/pkg/errs"
	"agora-exchange/internal/usecase/shared"

	"github.com/jmoiron/sqlx"
)

type SQLiteUoW struct {
	db *sqlx.DB
}

func NewSQLiteUoW(db *sqlx.DB) shared.UnitOfWork {
	return &SQLiteUoW{db: db}
}

func (u *SQLiteUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

// The driver has no read-only transaction mode; the single pooled connection already serializes access.
func (u *SQLiteUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *SQLiteUoW) Ping(ctx context.Context) error {
	return u.db.PingContext(ctx)
}

func (u *SQLiteUoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sqlxTx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := sqlxTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			slog.Warn("failed to rollback sqlite transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, &sqliteTx{tx: sqlxTx}); err != nil {
		return err
	}

	if err := sqlxTx.Commit(); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type sqliteTx struct {
	tx *sqlx.Tx

	// Lazy-initialized repositories
	effectiveResourceRepo shared.EffectiveResourceGateway
}

func (t *sqliteTx) EffectiveResources() shared.EffectiveResourceGateway {
	if t.effectiveResourceRepo == nil {
		t.effectiveResourceRepo = repository.NewSQLiteEffectiveResourceRepository(t.tx)
	}
	return t.effectiveResourceRepo
}
