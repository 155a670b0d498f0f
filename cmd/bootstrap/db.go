package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"agora-exchange/internal/infra/db"
	"agora-exchange/internal/infra/uow"
	"agora-exchange/internal/pkg/config"
	"agora-exchange/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the store selected by DB_DRIVER and closes it on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	var (
		u       shared.UnitOfWork
		cleanup func()
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := db.Migrate(cfg.DB, logger); err != nil {
				return nil, err
			}
		}
		pool, closePool, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		u, cleanup = uow.NewPostgresUoW(pool), closePool
	case config.DriverSQLite:
		sqliteDB, closeDB, err := db.ConnectSQLite(cfg.DB)
		if err != nil {
			return nil, err
		}
		u, cleanup = uow.NewSQLiteUoW(sqliteDB), closeDB
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	logger.Info("record store ready", "driver", cfg.DB.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return u, nil
}
