//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"agora-exchange/internal/infra"
	"agora-exchange/internal/infra/repository"
	"agora-exchange/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDBTX records the last statement and replays canned results.
type mockDBTX struct {
	execTag  pgconn.CommandTag
	execErr  error
	queryErr error

	lastArgs []any
}

func (m *mockDBTX) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	m.lastArgs = args
	return m.execTag, m.execErr
}

func (m *mockDBTX) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	m.lastArgs = args
	if m.queryErr == nil {
		panic("mockDBTX: Query needs a canned error")
	}
	return nil, m.queryErr
}

func (m *mockDBTX) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("mockDBTX: QueryRow is not used by the repository")
}

func TestEffectiveResourceRepository_Persist(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		db            *mockDBTX
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row inserted",
			db:   &mockDBTX{execTag: pgconn.NewCommandTag("INSERT 0 1")},
		},
		{
			name:          "error: id already taken",
			db:            &mockDBTX{execTag: pgconn.NewCommandTag("INSERT 0 0")},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name:          "error: unique violation reported by the server",
			db:            &mockDBTX{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name:          "error: check constraint",
			db:            &mockDBTX{execErr: &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:          "error: connection lost",
			db:            &mockDBTX{execErr: errors.New("database connection error")},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewEffectiveResourceRepository(tc.db)
			rec := builder.NewEffectiveResourceBuilder().WithNote("late").BuildDomain()

			err := repo.Persist(ctx, rec)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Len(t, tc.db.lastArgs, 8)
			assert.Equal(t, rec.ID(), tc.db.lastArgs[0])
			assert.Equal(t, pgtype.Text{String: "late", Valid: true}, tc.db.lastArgs[6])
			ts, ok := tc.db.lastArgs[7].(pgtype.Timestamptz)
			require.True(t, ok)
			assert.True(t, rec.Updated().Equal(ts.Time))
		})
	}
}

func TestEffectiveResourceRepository_Remove(t *testing.T) {
	ctx := context.Background()
	rec := builder.NewEffectiveResourceBuilder().BuildDomain()

	t.Run("success: row deleted", func(t *testing.T) {
		db := &mockDBTX{execTag: pgconn.NewCommandTag("DELETE 1")}
		require.NoError(t, repository.NewEffectiveResourceRepository(db).Remove(ctx, rec))
		assert.Equal(t, []any{rec.ID()}, db.lastArgs)
	})

	t.Run("error: row already gone", func(t *testing.T) {
		db := &mockDBTX{execTag: pgconn.NewCommandTag("DELETE 0")}
		err := repository.NewEffectiveResourceRepository(db).Remove(ctx, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestEffectiveResourceRepository_QueryFailures(t *testing.T) {
	ctx := context.Background()
	rec := builder.NewEffectiveResourceBuilder().BuildDomain()

	testCases := []struct {
		name       string
		queryErr   error
		call       func(*repository.EffectiveResourceRepository) error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:     "find: connection failure",
			queryErr: errors.New("connection reset by peer"),
			call: func(r *repository.EffectiveResourceRepository) error {
				_, err := r.Find(ctx, rec.ID())
				return err
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:     "find by reservation: statement timeout",
			queryErr: &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"},
			call: func(r *repository.EffectiveResourceRepository) error {
				_, err := r.FindByReservation(ctx, rec.ReservationID)
				return err
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:     "merge: foreign key violation",
			queryErr: &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			call: func(r *repository.EffectiveResourceRepository) error {
				_, err := r.Merge(ctx, rec)
				return err
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "merge: row vanished",
			queryErr: pgx.ErrNoRows,
			call: func(r *repository.EffectiveResourceRepository) error {
				_, err := r.Merge(ctx, rec)
				return err
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewEffectiveResourceRepository(&mockDBTX{queryErr: tc.queryErr})
			err := tc.call(repo)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}
