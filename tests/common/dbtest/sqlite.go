//go:build unit || e2e

package dbtest

import (
	"testing"

	"agora-exchange/internal/infra/db"
	"agora-exchange/internal/pkg/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite opens a private in-memory store with the schema applied.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	sqliteDB, cleanup, err := db.ConnectSQLite(config.NewTestConfig().DB)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return sqliteDB
}
