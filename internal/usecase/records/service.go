package records

import (
	"context"
	"log/slog"
	"time"

	"agora-exchange/internal/domain/record"
	"agora-exchange/internal/infra"
	"agora-exchange/internal/pkg/clock"
	"agora-exchange/internal/pkg/errs"
	"agora-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound              = errs.ErrRecordNotFound
	ErrIdentityGenerationExhausted = errs.ErrIdentityGenerationExhausted
	ErrValidation                  = errs.ErrDomainValidation
)

// A UUID collision means the generator is broken, so the bound stays small.
const maxIDAttempts = 4

// Kind supplies the per-entity behaviour the generic service cannot know.
type Kind[R record.Record] interface {
	Name() string
	New() R
	Gateway(tx shared.Tx) shared.Gateway[R]
	Find(ctx context.Context, gw shared.Gateway[R], id string) (R, error)
	// Copy writes every mutable field of src onto dst, keeping dst's id and timestamp once dst has an identity.
	Copy(src, dst R) error
}

type Result[R record.Record] struct {
	Record       R
	Outcome      shared.Outcome
	LastModified time.Time
}

type UseCase[R record.Record] interface {
	CreateOrUpdate(ctx context.Context, body R) (*Result[R], error)
	Read(ctx context.Context, id string) (*Result[R], error)
	Replace(ctx context.Context, id string, body R) (*Result[R], error)
	Delete(ctx context.Context, id string) (*Result[R], error)
}

type IDGenerator func() string

type Option[R record.Record] func(*Service[R])

func WithIDGenerator[R record.Record](gen IDGenerator) Option[R] {
	return func(s *Service[R]) {
		if gen != nil {
			s.newID = gen
		}
	}
}

type Service[R record.Record] struct {
	uow    shared.UnitOfWork
	kind   Kind[R]
	clock  clock.Clock
	newID  IDGenerator
	logger *slog.Logger
}

var _ UseCase[record.Record] = (*Service[record.Record])(nil)

func NewService[R record.Record](uow shared.UnitOfWork, kind Kind[R], clk clock.Clock, logger *slog.Logger, opts ...Option[R]) *Service[R] {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service[R]{
		uow:    uow,
		kind:   kind,
		clock:  clk,
		newID:  uuid.NewString,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service[R]) CreateOrUpdate(ctx context.Context, body R) (*Result[R], error) {
	var result *Result[R]
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gw := s.kind.Gateway(tx)
		id := body.ID()

		var (
			rec   R
			found bool
			err   error
		)
		if id != "" {
			rec, found, err = s.lookup(ctx, gw, id)
			if err != nil {
				return err
			}
		}

		created := false
		if !found {
			if id != "" {
				rec, created, err = s.createWithID(ctx, gw, id)
			} else {
				rec, err = s.createWithGeneratedID(ctx, gw)
				created = err == nil
			}
			if err != nil {
				return err
			}
		}

		outcome := shared.OutcomeSeeOther
		if created {
			outcome = shared.OutcomeCreated
			s.logger.DebugContext(ctx, "POST created", "kind", s.kind.Name(), "id", rec.ID())
		} else {
			s.logger.DebugContext(ctx, "POST updating", "kind", s.kind.Name(), "id", rec.ID())
		}

		saved, err := s.apply(ctx, gw, body, rec)
		if err != nil {
			return err
		}
		result = &Result[R]{Record: saved, Outcome: outcome, LastModified: saved.Updated()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service[R]) Read(ctx context.Context, id string) (*Result[R], error) {
	var result *Result[R]
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, found, err := s.lookup(ctx, s.kind.Gateway(tx), id)
		if err != nil {
			return err
		}
		if !found {
			return ErrRecordNotFound
		}
		result = &Result[R]{Record: rec, Outcome: shared.OutcomeOK, LastModified: rec.Updated()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Replace is an upsert: a missing id is created under exactly that id.
func (s *Service[R]) Replace(ctx context.Context, id string, body R) (*Result[R], error) {
	if id == "" {
		return nil, errs.Mark(errs.New("record id is required"), ErrValidation)
	}

	var result *Result[R]
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gw := s.kind.Gateway(tx)

		rec, found, err := s.lookup(ctx, gw, id)
		if err != nil {
			return err
		}

		created := false
		if !found {
			rec, created, err = s.createWithID(ctx, gw, id)
			if err != nil {
				return err
			}
		}

		outcome := shared.OutcomeOK
		if created {
			outcome = shared.OutcomeCreated
			s.logger.DebugContext(ctx, "PUT created", "kind", s.kind.Name(), "id", id)
		} else {
			s.logger.DebugContext(ctx, "PUT updating", "kind", s.kind.Name(), "id", id)
		}

		saved, err := s.apply(ctx, gw, body, rec)
		if err != nil {
			return err
		}
		result = &Result[R]{Record: saved, Outcome: outcome, LastModified: saved.Updated()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service[R]) Delete(ctx context.Context, id string) (*Result[R], error) {
	var result *Result[R]
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gw := s.kind.Gateway(tx)

		rec, found, err := s.lookup(ctx, gw, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrRecordNotFound
		}
		if err := gw.Remove(ctx, rec); err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "DELETE removed", "kind", s.kind.Name(), "id", id)
		result = &Result[R]{Record: rec, Outcome: shared.OutcomeOK, LastModified: rec.Updated()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service[R]) lookup(ctx context.Context, gw shared.Gateway[R], id string) (R, bool, error) {
	var zero R
	rec, err := s.kind.Find(ctx, gw, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return rec, true, nil
}

// createWithID reports created=false when a concurrent writer inserted id first;
// the caller then updates that row instead.
func (s *Service[R]) createWithID(ctx context.Context, gw shared.Gateway[R], id string) (R, bool, error) {
	var zero R
	rec := s.kind.New()
	rec.SetID(id)

	err := gw.Persist(ctx, rec)
	if err == nil {
		return rec, true, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return zero, false, err
	}

	existing, found, lookupErr := s.lookup(ctx, gw, id)
	if lookupErr != nil {
		return zero, false, lookupErr
	}
	if !found {
		return zero, false, err
	}
	s.logger.WarnContext(ctx, "record created concurrently, updating instead",
		"kind", s.kind.Name(),
		"id", id)
	return existing, false, nil
}

func (s *Service[R]) createWithGeneratedID(ctx context.Context, gw shared.Gateway[R]) (R, error) {
	var zero R
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		rec := s.kind.New()
		rec.SetID(s.newID())

		err := gw.Persist(ctx, rec)
		if err == nil {
			return rec, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return zero, err
		}
		s.logger.WarnContext(ctx, "generated record id collided",
			"kind", s.kind.Name(),
			"id", rec.ID(),
			"attempt", attempt)
	}

	s.logger.ErrorContext(ctx, "record id generation exhausted",
		"kind", s.kind.Name(),
		"attempts", maxIDAttempts)
	return zero, errs.Wrapf(ErrIdentityGenerationExhausted, "%s: %d attempts", s.kind.Name(), maxIDAttempts)
}

func (s *Service[R]) apply(ctx context.Context, gw shared.Gateway[R], body, rec R) (R, error) {
	var zero R
	if err := s.kind.Copy(body, rec); err != nil {
		return zero, errs.Mark(err, ErrValidation)
	}
	rec.Touch(s.clock.Now())
	return gw.Merge(ctx, rec)
}
