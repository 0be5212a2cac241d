package bootstrap

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RegisterMigrations),
)

// NewDB opens the pool for the postgres driver. The memory driver gets a nil pool.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return nil, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RegisterMigrations(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) {
	if pool == nil || !cfg.Store.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			migrator, err := db.NewMigrator(pool, logger)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := migrator.Close(); cerr != nil {
					logger.Warn("failed to close migrator", slog.String("error", cerr.Error()))
				}
			}()
			return migrator.Up(ctx)
		},
	})
}
