//go:build unit || e2e

package builder

import (
	"time"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/domain/record"
	reqdto "agora-exchange/internal/handler/dto/request"
	"agora-exchange/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type EffectiveResourceBuilder struct {
	ID            string
	ReservationID string
	ResourceRef   string
	Name          string
	Quantity      int64
	Unit          string
	Note          *string
	Updated       time.Time
}

func NewEffectiveResourceBuilder() *EffectiveResourceBuilder {
	return &EffectiveResourceBuilder{
		ID:            uuid.NewString(),
		ReservationID: "rsv-" + uuid.NewString()[:8],
		ResourceRef:   "room/standard-double",
		Name:          "Standard double room",
		Quantity:      2,
		Unit:          "night",
		Updated:       record.Normalize(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
	}
}

func (b *EffectiveResourceBuilder) With(mutate func(*EffectiveResourceBuilder)) *EffectiveResourceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EffectiveResourceBuilder) BuildDomain() *effectiveresource.EffectiveResource {
	return effectiveresource.Reconstruct(
		record.RestoreMeta(b.ID, b.Updated),
		b.ReservationID,
		b.ResourceRef,
		b.Name,
		b.Quantity,
		b.Unit,
		b.Note,
	)
}

// BuildBody is an inbound representation: no timestamp, id only when set.
func (b *EffectiveResourceBuilder) BuildBody() *effectiveresource.EffectiveResource {
	res := effectiveresource.Reconstruct(
		record.Meta{},
		b.ReservationID,
		b.ResourceRef,
		b.Name,
		b.Quantity,
		b.Unit,
		b.Note,
	)
	res.SetID(b.ID)
	return res
}

func (b *EffectiveResourceBuilder) BuildRequestDTO() reqdto.EffectiveResourceRequest {
	return reqdto.EffectiveResourceRequest{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		ResourceRef:   b.ResourceRef,
		Name:          b.Name,
		Quantity:      b.Quantity,
		Unit:          b.Unit,
		Note:          b.Note,
	}
}

func (b *EffectiveResourceBuilder) BuildRow() converter.EffectiveResourceRow {
	return converter.EffectiveResourceToRow(b.BuildDomain())
}

// Fluent builder methods
func (b *EffectiveResourceBuilder) WithID(id string) *EffectiveResourceBuilder {
	b.ID = id
	return b
}

func (b *EffectiveResourceBuilder) WithoutID() *EffectiveResourceBuilder {
	b.ID = ""
	return b
}

func (b *EffectiveResourceBuilder) WithReservationID(reservationID string) *EffectiveResourceBuilder {
	b.ReservationID = reservationID
	return b
}

func (b *EffectiveResourceBuilder) WithName(name string) *EffectiveResourceBuilder {
	b.Name = name
	return b
}

func (b *EffectiveResourceBuilder) WithQuantity(quantity int64) *EffectiveResourceBuilder {
	b.Quantity = quantity
	return b
}

func (b *EffectiveResourceBuilder) WithNote(note string) *EffectiveResourceBuilder {
	b.Note = &note
	return b
}

func (b *EffectiveResourceBuilder) WithUpdated(updated time.Time) *EffectiveResourceBuilder {
	b.Updated = record.Normalize(updated)
	return b
}
