package effectiveresource

import (
	"strings"
	"unicode/utf8"

	"agora-exchange/internal/domain/record"
	"agora-exchange/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var (
	ErrNameTooLong      = errs.New("effective resource name is too long (max 255 characters)")
	ErrUnitTooLong      = errs.New("effective resource unit is too long (max 32 characters)")
	ErrNegativeQuantity = errs.New("effective resource quantity cannot be negative")
)

const (
	Kind = "EffectiveResource"

	MaxNameLength = 255
	MaxUnitLength = 32
)

// EffectiveResource is a supply resource as it was actually allocated to a reservation.
// Exported fields are the mutable state; identity and timestamp live in the embedded Meta.
type EffectiveResource struct {
	record.Meta

	ReservationID string
	ResourceRef   string
	Name          string
	Quantity      int64
	Unit          string
	Note          *string
}

var _ record.Record = (*EffectiveResource)(nil)

func New() *EffectiveResource {
	return &EffectiveResource{}
}

func Reconstruct(
	meta record.Meta,
	reservationID, resourceRef, name string,
	quantity int64,
	unit string,
	note *string,
) *EffectiveResource {
	return &EffectiveResource{
		Meta:          meta,
		ReservationID: reservationID,
		ResourceRef:   resourceRef,
		Name:          name,
		Quantity:      quantity,
		Unit:          unit,
		Note:          note,
	}
}

func (r *EffectiveResource) Validate() error {
	if utf8.RuneCountInString(r.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if utf8.RuneCountInString(r.Unit) > MaxUnitLength {
		return ErrUnitTooLong
	}
	if r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// CopyFrom overwrites every mutable field with the values in src.
// The receiver's id and timestamp are kept once it has an identity.
func (r *EffectiveResource) CopyFrom(src *EffectiveResource) error {
	if src == nil {
		return nil
	}
	meta := r.Meta
	if err := copier.CopyWithOption(r, src, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	if meta.HasIdentity() {
		r.Meta = meta
	} else {
		r.Meta = src.Meta
	}
	r.ReservationID = strings.TrimSpace(r.ReservationID)
	r.ResourceRef = strings.TrimSpace(r.ResourceRef)
	r.Name = strings.TrimSpace(r.Name)
	r.Unit = strings.TrimSpace(r.Unit)
	return r.Validate()
}
