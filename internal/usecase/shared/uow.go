package shared

import (
	"context"

	"agora-exchange/internal/domain/effectiveresource"
	"agora-exchange/internal/domain/record"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock -exclude_interfaces=Gateway

type UnitOfWork interface {
	// Within: Full transaction for write operations; commits when fn returns nil, rolls back otherwise
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Ping: Store reachability for readiness checks
	Ping(ctx context.Context) error
}

// Tx hands out gateways bound to one open transaction.
type Tx interface {
	EffectiveResources() EffectiveResourceGateway
}

// Gateway is the per-kind persistence contract the generic record service runs against.
type Gateway[R record.Record] interface {
	Find(ctx context.Context, id string) (R, error)
	Persist(ctx context.Context, rec R) error
	Merge(ctx context.Context, rec R) (R, error)
	Remove(ctx context.Context, rec R) error
}

type EffectiveResourceGateway interface {
	Gateway[*effectiveresource.EffectiveResource]
	FindByReservation(ctx context.Context, reservationID string) ([]*effectiveresource.EffectiveResource, error)
}
