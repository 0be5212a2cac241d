//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"peer-tutor-scheduler/cmd/bootstrap"
	"peer-tutor-scheduler/cmd/bootstrap/components"
	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/pkg/config"
	"peer-tutor-scheduler/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite runs the real application against Postgres and Redis containers.
// Every subtest starts from an empty schedule and an empty user cache.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	cache := startRedis(t)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pg)
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Notify.Sinks = []string{config.SinkLog, config.SinkOutbox}
	cfg.Redis.Addr = cache.Addr()

	s.Config = cfg
	s.DB = connect(t, cfg.DB)
	s.Router, s.Cache = startApp(t, cfg, s.DB)

	slog.Info("e2e environment ready",
		slog.String("database", cfg.DB.DBName),
		slog.String("postgres", pg.Addr()),
		slog.String("redis", cache.Addr()),
	)
}

func (s *SharedSuite) SetupSubTest() {
	t := s.T()
	require.NoError(t, dbtest.ResetDB(s.DB), "reset database")
	require.NoError(t, s.Cache.FlushDB(context.Background()).Err(), "flush user cache")
}

// createDatabase gives each test process its own database on the shared server.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "scheduler_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg.Host, pg.Port))
	require.NoError(t, err, "open admin connection")
	defer admin.Close()

	// the server can refuse connections for a moment after the readiness check
	var createErr error
	for attempt := 1; attempt <= 5; attempt++ {
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("create database failed", slog.Int("attempt", attempt), slog.String("error", createErr.Error()))
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, createErr, "create test database")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, adminDSN(pg.Host, pg.Port))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database failed", slog.String("database", name), slog.String("error", err.Error()))
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// connect opens the suite's own pool, migrates the schema and seeds reference users.
func connect(t *testing.T, cfg config.DBConfig) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, _, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(pool.Close)

	migrator, err := db.NewMigrator(pool, slog.Default())
	require.NoError(t, err, "create migrator")
	defer migrator.Close()
	require.NoError(t, migrator.Up(ctx), "apply migrations")

	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")
	return pool
}

// startApp builds the production fx graph around the suite's pool.
func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool) (*gin.Engine, *redis.Client) {
	t.Helper()

	var (
		router *gin.Engine
		cache  *redis.Client
	)
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MessagingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cache),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")
	require.NotNil(t, router, "application started without a router")
	require.NotNil(t, cache, "application started without a redis client")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("stop application failed", slog.String("error", err.Error()))
		}
	})
	return router, cache
}

// UserCacheKey is where the cached directory keeps a user's display name.
func UserCacheKey(userID string) string {
	return fmt.Sprintf("userdir:%s", userID)
}
