package userdir

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "userdir:"
	// missing is cached for ids the backing directory does not know.
	missing = "\x00"
	// MissingTTL caps how long an unknown id stays cached.
	MissingTTL = 30 * time.Second
)

// CachedDirectory fronts another directory with a Redis cache of display names.
// Cache failures fall through to the backing directory.
type CachedDirectory struct {
	next   shared.UserDirectory
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedDirectory(next shared.UserDirectory, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedDirectory {
	return &CachedDirectory{next: next, client: client, ttl: ttl, logger: logger}
}

func (d *CachedDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := d.DisplayName(ctx, userID)
	if errs.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *CachedDirectory) DisplayName(ctx context.Context, userID string) (string, error) {
	key := keyPrefix + userID
	cached, err := d.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == missing {
			return "", ErrUserNotFound
		}
		return cached, nil
	case !errors.Is(err, redis.Nil):
		d.logger.Warn("user cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	name, err := d.next.DisplayName(ctx, userID)
	value := name
	if errs.Is(err, ErrUserNotFound) {
		value = missing
	} else if err != nil {
		return "", err
	}

	ttl := d.ttl
	if value == missing && (ttl <= 0 || ttl > MissingTTL) {
		ttl = MissingTTL
	}
	if serr := d.client.Set(ctx, key, value, ttl).Err(); serr != nil {
		d.logger.Warn("user cache write failed", slog.String("key", key), slog.String("error", serr.Error()))
	}
	return name, err
}
