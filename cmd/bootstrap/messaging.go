package bootstrap

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/infra/notify"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/config"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNATSConn,
		NewRedisClient,
		NewNotificationSink,
	),
)

// NewNATSConn returns nil unless the nats sink is enabled.
func NewNATSConn(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*nats.Conn, error) {
	if !cfg.Notify.Enabled(config.SinkNATS) {
		return nil, nil
	}
	conn, err := notify.Connect(cfg.Notify.NATSURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Drain()
		},
	})
	return conn, nil
}

// NewRedisClient returns nil when no Redis address is configured.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the cache falls through on failure, so an unreachable Redis only warns
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, user lookups will bypass the cache",
					slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewNotificationSink(cfg config.Config, pool *pgxpool.Pool, conn *nats.Conn, clk clock.Clock, logger *slog.Logger) (shared.NotificationSink, error) {
	var sinks notify.Fanout
	if cfg.Notify.Enabled(config.SinkLog) {
		sinks = append(sinks, notify.NewLogSink(logger))
	}
	if cfg.Notify.Enabled(config.SinkOutbox) {
		if pool == nil {
			return nil, errs.Newf("NOTIFY_SINKS=%s requires STORE_DRIVER=%s", config.SinkOutbox, config.StoreDriverPostgres)
		}
		sinks = append(sinks, notify.NewOutboxSink(pool, clk, logger))
	}
	if conn != nil {
		sinks = append(sinks, notify.NewNatsSink(conn, cfg.Notify.SubjectPrefix, clk, logger))
	}
	return sinks, nil
}
