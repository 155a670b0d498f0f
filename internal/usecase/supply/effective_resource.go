package supply

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/domain/record"
	"agora-exchange/internal/pkg/clock"
	"agora-exchange/internal/pkg/errs"
	"agora-exchange/internal/usecase/records"
	"agora-exchange/internal/usecase/shared"
)

//go:generate mockgen -source=effective_resource.go -destination=../../../tests/mock/supply/effective_resource.go -package=supplymock

var ErrReservationIDRequired = errs.Mark(errs.New("reservation id is required"), records.ErrValidation)

type ListResult struct {
	Records      []*effectiveresource.EffectiveResource
	LastModified time.Time
}

type EffectiveResourceUseCase interface {
	records.UseCase[*effectiveresource.EffectiveResource]
	FindByReservation(ctx context.Context, reservationID string) (*ListResult, error)
}

type EffectiveResourceService struct {
	*records.Service[*effectiveresource.EffectiveResource]
	uow shared.UnitOfWork
}

func NewEffectiveResourceService(
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
	opts ...records.Option[*effectiveresource.EffectiveResource],
) EffectiveResourceUseCase {
	return &EffectiveResourceService{
		Service: records.NewService(uow, effectiveResourceKind{}, clk, logger, opts...),
		uow:     uow,
	}
}

func (s *EffectiveResourceService) FindByReservation(ctx context.Context, reservationID string) (*ListResult, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return nil, ErrReservationIDRequired
	}

	var found []*effectiveresource.EffectiveResource
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.EffectiveResources().FindByReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		found = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, records.ErrRecordNotFound
	}

	return &ListResult{
		Records:      found,
		LastModified: record.LatestUpdate(found),
	}, nil
}

type effectiveResourceKind struct{}

func (effectiveResourceKind) Name() string { return effectiveresource.Kind }

func (effectiveResourceKind) New() *effectiveresource.EffectiveResource {
	return effectiveresource.New()
}

func (effectiveResourceKind) Gateway(tx shared.Tx) shared.Gateway[*effectiveresource.EffectiveResource] {
	return tx.EffectiveResources()
}

func (effectiveResourceKind) Find(ctx context.Context, gw shared.Gateway[*effectiveresource.EffectiveResource], id string) (*effectiveresource.EffectiveResource, error) {
	return gw.Find(ctx, id)
}

func (effectiveResourceKind) Copy(src, dst *effectiveresource.EffectiveResource) error {
	return dst.CopyFrom(src)
}
