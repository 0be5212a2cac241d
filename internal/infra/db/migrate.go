package db

import (
	"context"
	"database/sql"
	"log/slog"

	"peer-tutor-scheduler/internal/pkg/errs"

	// Go migrations register themselves with goose in init.
	_ "peer-tutor-scheduler/internal/infra/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the registered goose Go migrations over a pgx pool.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
	logger   *slog.Logger
}

func NewMigrator(pool *pgxpool.Pool, logger *slog.Logger) (*Migrator, error) {
	// goose works with *sql.DB, so wrap the pool
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, nil)
	if err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "create goose provider")
	}
	return &Migrator{db: db, provider: provider, logger: logger}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	m.logger.Info("applying database migrations")

	results, err := m.provider.Up(ctx)
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}
	for _, r := range results {
		m.logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "get migration version")
	}
	return version, nil
}

// Close releases the *sql.DB wrapper; the pool itself stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}
