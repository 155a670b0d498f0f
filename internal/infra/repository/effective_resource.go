package repository

import (
	"context"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/infra"
	"agora-exchange/internal/infra/db"
	"agora-exchange/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5"
)

const effectiveResourceColumns = `id, reservation_id, resource_ref, name, quantity, unit, note, updated_at`

const findEffectiveResource = `SELECT ` + effectiveResourceColumns + `
FROM effective_resources
WHERE id = $1`

const findEffectiveResourcesByReservation = `SELECT ` + effectiveResourceColumns + `
FROM effective_resources
WHERE reservation_id = $1
ORDER BY id`

// Conflicts are reported through the row count so the surrounding transaction stays usable.
const insertEffectiveResource = `INSERT INTO effective_resources (` + effectiveResourceColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

const updateEffectiveResource = `UPDATE effective_resources
SET reservation_id = $2,
    resource_ref = $3,
    name = $4,
    quantity = $5,
    unit = $6,
    note = $7,
    updated_at = $8
WHERE id = $1
RETURNING ` + effectiveResourceColumns

const deleteEffectiveResource = `DELETE FROM effective_resources WHERE id = $1`

type EffectiveResourceRepository struct {
	db db.DBTX
}

func NewEffectiveResourceRepository(dbtx db.DBTX) *EffectiveResourceRepository {
	return &EffectiveResourceRepository{db: dbtx}
}

func (r *EffectiveResourceRepository) Find(ctx context.Context, id string) (*effectiveresource.EffectiveResource, error) {
	rows, err := r.db.Query(ctx, findEffectiveResource, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resource", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.EffectiveResourceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resource", err)
	}
	return converter.EffectiveResourceFromRow(row), nil
}

func (r *EffectiveResourceRepository) FindByReservation(ctx context.Context, reservationID string) ([]*effectiveresource.EffectiveResource, error) {
	rows, err := r.db.Query(ctx, findEffectiveResourcesByReservation, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resources by reservation", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.EffectiveResourceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find effective resources by reservation", err)
	}

	result := make([]*effectiveresource.EffectiveResource, len(collected))
	for i, row := range collected {
		result[i] = converter.EffectiveResourceFromRow(row)
	}
	return result, nil
}

func (r *EffectiveResourceRepository) Persist(ctx context.Context, rec *effectiveresource.EffectiveResource) error {
	p := converter.EffectiveResourceToRow(rec)
	tag, err := r.db.Exec(ctx, insertEffectiveResource,
		p.ID, p.ReservationID, p.ResourceRef, p.Name, p.Quantity, p.Unit, p.Note, p.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to persist effective resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("effective resource already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (r *EffectiveResourceRepository) Merge(ctx context.Context, rec *effectiveresource.EffectiveResource) (*effectiveresource.EffectiveResource, error) {
	p := converter.EffectiveResourceToRow(rec)
	rows, err := r.db.Query(ctx, updateEffectiveResource,
		p.ID, p.ReservationID, p.ResourceRef, p.Name, p.Quantity, p.Unit, p.Note, p.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to merge effective resource", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.EffectiveResourceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to merge effective resource", err)
	}
	return converter.EffectiveResourceFromRow(row), nil
}

func (r *EffectiveResourceRepository) Remove(ctx context.Context, rec *effectiveresource.EffectiveResource) error {
	tag, err := r.db.Exec(ctx, deleteEffectiveResource, rec.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to remove effective resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("effective resource not found", nil, infra.KindNotFound)
	}
	return nil
}
