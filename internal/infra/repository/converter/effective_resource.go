package converter

import (
	"database/sql"
	"time"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/domain/record"
	"agora-exchange/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// EffectiveResourceRow mirrors the PostgreSQL effective_resources table.
type EffectiveResourceRow struct {
	ID            string             `db:"id"`
	ReservationID string             `db:"reservation_id"`
	ResourceRef   string             `db:"resource_ref"`
	Name          string             `db:"name"`
	Quantity      int64              `db:"quantity"`
	Unit          string             `db:"unit"`
	Note          pgtype.Text        `db:"note"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at"`
}

// SQLiteEffectiveResourceRow mirrors the SQLite table, which keeps the timestamp as unix microseconds.
type SQLiteEffectiveResourceRow struct {
	ID            string         `db:"id"`
	ReservationID string         `db:"reservation_id"`
	ResourceRef   string         `db:"resource_ref"`
	Name          string         `db:"name"`
	Quantity      int64          `db:"quantity"`
	Unit          string         `db:"unit"`
	Note          sql.NullString `db:"note"`
	UpdatedAtUs   int64          `db:"updated_at_us"`
}

func EffectiveResourceFromRow(row EffectiveResourceRow) *effectiveresource.EffectiveResource {
	return effectiveresource.Reconstruct(
		record.RestoreMeta(row.ID, pgconv.TimeFromPgtype(row.UpdatedAt)),
		row.ReservationID,
		row.ResourceRef,
		row.Name,
		row.Quantity,
		row.Unit,
		pgconv.StringPtrFromPgtype(row.Note),
	)
}

func EffectiveResourceToRow(r *effectiveresource.EffectiveResource) EffectiveResourceRow {
	return EffectiveResourceRow{
		ID:            r.ID(),
		ReservationID: r.ReservationID,
		ResourceRef:   r.ResourceRef,
		Name:          r.Name,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		Note:          pgconv.StringPtrToPgtype(r.Note),
		UpdatedAt:     pgconv.TimeToPgtype(record.Normalize(r.Updated())),
	}
}

func EffectiveResourceFromSQLiteRow(row SQLiteEffectiveResourceRow) *effectiveresource.EffectiveResource {
	var note *string
	if row.Note.Valid {
		s := row.Note.String
		note = &s
	}
	var updated time.Time
	if row.UpdatedAtUs != 0 {
		updated = time.UnixMicro(row.UpdatedAtUs)
	}
	return effectiveresource.Reconstruct(
		record.RestoreMeta(row.ID, updated),
		row.ReservationID,
		row.ResourceRef,
		row.Name,
		row.Quantity,
		row.Unit,
		note,
	)
}

func EffectiveResourceToSQLiteRow(r *effectiveresource.EffectiveResource) SQLiteEffectiveResourceRow {
	row := SQLiteEffectiveResourceRow{
		ID:            r.ID(),
		ReservationID: r.ReservationID,
		ResourceRef:   r.ResourceRef,
		Name:          r.Name,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
	}
	if r.Note != nil {
		row.Note = sql.NullString{String: *r.Note, Valid: true}
	}
	if u := r.Updated(); !u.IsZero() {
		row.UpdatedAtUs = record.Normalize(u).UnixMicro()
	}
	return row
}
