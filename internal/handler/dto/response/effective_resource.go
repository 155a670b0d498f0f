package response

import (
	"encoding/xml"
	"time"

	"agora-exchange/internal/domain/effectiveresource"
)

type EffectiveResourceResponse struct {
	XMLName       xml.Name  `json:"-" xml:"effectiveResource"`
	ID            string    `json:"id" xml:"id"`
	Updated       time.Time `json:"updated" xml:"updated"`
	ReservationID string    `json:"reservationId" xml:"reservationId"`
	ResourceRef   string    `json:"resourceRef" xml:"resourceRef"`
	Name          string    `json:"name" xml:"name"`
	Quantity      int64     `json:"quantity" xml:"quantity"`
	Unit          string    `json:"unit" xml:"unit"`
	Note          *string   `json:"note,omitempty" xml:"note,omitempty"`
}

func FromEffectiveResource(r *effectiveresource.EffectiveResource) *EffectiveResourceResponse {
	return &EffectiveResourceResponse{
		ID:            r.ID(),
		Updated:       r.Updated(),
		ReservationID: r.ReservationID,
		ResourceRef:   r.ResourceRef,
		Name:          r.Name,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		Note:          r.Note,
	}
}

type EffectiveResourceListResponse struct {
	XMLName xml.Name                     `json:"-" xml:"effectiveResources"`
	Items   []*EffectiveResourceResponse `json:"items" xml:"effectiveResource"`
}

func FromEffectiveResourceList(rs []*effectiveresource.EffectiveResource) *EffectiveResourceListResponse {
	items := make([]*EffectiveResourceResponse, len(rs))
	for i, r := range rs {
		items[i] = FromEffectiveResource(r)
	}
	return &EffectiveResourceListResponse{Items: items}
}
