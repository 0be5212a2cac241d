package userdir

import (
	"context"
	"errors"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/user"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

// PostgresDirectory reads the users table owned by the identity service.
type PostgresDirectory struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresDirectory(pool *pgxpool.Pool, logger *slog.Logger) *PostgresDirectory {
	return &PostgresDirectory{pool: pool, logger: logger}
}

func (d *PostgresDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := d.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, infra.FromDBError(d.logger, "check user exists", err)
	}
	return exists, nil
}

func (d *PostgresDirectory) DisplayName(ctx context.Context, userID string) (string, error) {
	p, err := d.Profile(ctx, userID)
	if err != nil {
		return "", err
	}
	return p.DisplayName(), nil
}

func (d *PostgresDirectory) Profile(ctx context.Context, userID string) (*user.Profile, error) {
	var name, role string
	err := d.pool.QueryRow(ctx, `SELECT display_name, role FROM users WHERE id = $1`, userID).Scan(&name, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, infra.FromDBError(d.logger, "load user", err)
	}
	p, err := user.NewProfile(userID, name, user.Role(role))
	if err != nil {
		return nil, errs.Wrap(err, "decode user row")
	}
	return p, nil
}
