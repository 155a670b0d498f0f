package repository

import (
	"context"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/infra"
	"agora-exchange/internal/infra/repository/converter"

	"github.com/jmoiron/sqlx"
)

const sqliteEffectiveResourceColumns = `id, reservation_id, resource_ref, name, quantity, unit, note, updated_at_us`

const sqliteFindEffectiveResource = `SELECT ` + sqliteEffectiveResourceColumns + `
FROM effective_resources
WHERE id = ?`

const sqliteFindEffectiveResourcesByReservation = `SELECT ` + sqliteEffectiveResourceColumns + `
FROM effective_resources
WHERE reservation_id = ?
ORDER BY id`

const sqliteInsertEffectiveResource = `INSERT INTO effective_resources (` + sqliteEffectiveResourceColumns + `)
VALUES (:id, :reservation_id, :resource_ref, :name, :quantity, :unit, :note, :updated_at_us)
ON CONFLICT (id) DO NOTHING`

const sqliteUpdateEffectiveResource = `UPDATE effective_resources
SET reservation_id = :reservation_id,
    resource_ref = :resource_ref,
    name = :name,
    quantity = :quantity,
    unit = :unit,
    note = :note,
    updated_at_us = :updated_at_us
WHERE id = :id`

const sqliteDeleteEffectiveResource = `DELETE FROM effective_resources WHERE id = ?`

// SQLiteEffectiveResourceRepository runs against either *sqlx.DB or *sqlx.Tx.
type SQLiteEffectiveResourceRepository struct {
	db sqlx.ExtContext
}

func NewSQLiteEffectiveResourceRepository(dbtx sqlx.ExtContext) *SQLiteEffectiveResourceRepository {
	return &SQLiteEffectiveResourceRepository{db: dbtx}
}

func (r *SQLiteEffectiveResourceRepository) Find(ctx context.Context, id string) (*effectiveresource.EffectiveResource, error) {
	var row converter.SQLiteEffectiveResourceRow
	if err := sqlx.GetContext(ctx, r.db, &row, sqliteFindEffectiveResource, id); err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resource", err)
	}
	return converter.EffectiveResourceFromSQLiteRow(row), nil
}

func (r *SQLiteEffectiveResourceRepository) FindByReservation(ctx context.Context, reservationID string) ([]*effectiveresource.EffectiveResource, error) {
	var rows []converter.SQLiteEffectiveResourceRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, sqliteFindEffectiveResourcesByReservation, reservationID); err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resources by reservation", err)
	}

	result := make([]*effectiveresource.EffectiveResource, len(rows))
	for i, row := range rows {
		result[i] = converter.EffectiveResourceFromSQLiteRow(row)
	}
	return result, nil
}

func (r *SQLiteEffectiveResourceRepository) Persist(ctx context.Context, rec *effectiveresource.EffectiveResource) error {
	res, err := sqlx.NamedExecContext(ctx, r.db, sqliteInsertEffectiveResource, converter.EffectiveResourceToSQLiteRow(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to persist effective resource", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr("failed to persist effective resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("effective resource already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (r *SQLiteEffectiveResourceRepository) Merge(ctx context.Context, rec *effectiveresource.EffectiveResource) (*effectiveresource.EffectiveResource, error) {
	res, err := sqlx.NamedExecContext(ctx, r.db, sqliteUpdateEffectiveResource, converter.EffectiveResourceToSQLiteRow(rec))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to merge effective resource", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to merge effective resource", err)
	}
	if affected == 0 {
		return nil, infra.WrapRepoErr("effective resource not found", nil, infra.KindNotFound)
	}
	return r.Find(ctx, rec.ID())
}

func (r *SQLiteEffectiveResourceRepository) Remove(ctx context.Context, rec *effectiveresource.EffectiveResource) error {
	res, err := r.db.ExecContext(ctx, sqliteDeleteEffectiveResource, rec.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to remove effective resource", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr("failed to remove effective resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("effective resource not found", nil, infra.KindNotFound)
	}
	return nil
}
