package request

import (
	"encoding/xml"
	"strings"
	"time"

	"agora-exchange/internal/domain/effectiveresource"

	"github.com/jinzhu/copier"
)

// EffectiveResourceRequest is the inbound representation for POST and PUT.
// Updated is accepted so clients can send back what they read; the server
// always assigns its own timestamp.
type EffectiveResourceRequest struct {
	XMLName       xml.Name   `json:"-" xml:"effectiveResource" copier:"-"`
	ID            string     `json:"id,omitempty" xml:"id,omitempty" binding:"max=255" copier:"-"`
	Updated       *time.Time `json:"updated,omitempty" xml:"updated,omitempty" copier:"-"`
	ReservationID string     `json:"reservationId" xml:"reservationId" binding:"max=255"`
	ResourceRef   string     `json:"resourceRef" xml:"resourceRef" binding:"max=255"`
	Name          string     `json:"name" xml:"name" binding:"max=255"`
	Quantity      int64      `json:"quantity" xml:"quantity" binding:"gte=0"`
	Unit          string     `json:"unit" xml:"unit" binding:"max=32"`
	Note          *string    `json:"note,omitempty" xml:"note,omitempty"`
}

func (r *EffectiveResourceRequest) ToDomain() (*effectiveresource.EffectiveResource, error) {
	res := effectiveresource.New()
	if err := copier.CopyWithOption(res, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.SetID(strings.TrimSpace(r.ID))
	return res, nil
}
