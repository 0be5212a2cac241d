package components

import (
	"log/slog"

	"peer-tutor-scheduler/internal/infra/memstore"
	"peer-tutor-scheduler/internal/infra/uow"
	"peer-tutor-scheduler/internal/infra/userdir"
	"peer-tutor-scheduler/internal/pkg/config"
	"peer-tutor-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
		NewUserDirectory,
	),
)

// NewUnitOfWork picks the store behind every command and query.
func NewUnitOfWork(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	if pool == nil {
		logger.Warn("using the in-memory store; data is lost on restart")
		return memstore.New(logger)
	}
	return uow.NewPostgresUoW(pool, logger)
}

func NewUserDirectory(cfg config.Config, pool *pgxpool.Pool, client *redis.Client, logger *slog.Logger) shared.UserDirectory {
	var dir shared.UserDirectory
	if pool == nil {
		dir = userdir.NewStaticDirectory(cfg.Store.MemoryUsers)
	} else {
		dir = userdir.NewPostgresDirectory(pool, logger)
	}
	if client != nil {
		dir = userdir.NewCachedDirectory(dir, client, cfg.Redis.CacheTTL, logger)
	}
	return dir
}
