//go:build unit

package userdir_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/infra/userdir"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache answers the two commands the cached directory issues and
// records the expiry of every write.
type memoryCache struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	c.values[key] = value.(string)
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCachedDirectory(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("known users are cached for the full ttl", func(t *testing.T) {
		cache := newMemoryCache()
		backing := userdir.NewStaticDirectory(map[string]string{"tutor-1": "Tia Tutor"})
		dir := userdir.NewCachedDirectory(backing, cache, time.Hour, logger)

		name, err := dir.DisplayName(ctx, "tutor-1")
		require.NoError(t, err)
		assert.Equal(t, "Tia Tutor", name)
		assert.Equal(t, time.Hour, cache.ttls["userdir:tutor-1"])
	})

	cases := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{name: "long ttl", ttl: time.Hour, want: userdir.MissingTTL},
		{name: "no expiry", ttl: 0, want: userdir.MissingTTL},
		{name: "ttl already shorter", ttl: 5 * time.Second, want: 5 * time.Second},
	}
	for _, tc := range cases {
		t.Run("unknown users expire quickly: "+tc.name, func(t *testing.T) {
			cache := newMemoryCache()
			dir := userdir.NewCachedDirectory(userdir.NewStaticDirectory(nil), cache, tc.ttl, logger)

			ok, err := dir.Exists(ctx, "ghost")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, tc.want, cache.ttls["userdir:ghost"])
		})
	}

	t.Run("a cached miss is answered without the backing directory", func(t *testing.T) {
		cache := newMemoryCache()
		backing := userdir.NewStaticDirectory(nil)
		dir := userdir.NewCachedDirectory(backing, cache, time.Hour, logger)

		_, err := dir.DisplayName(ctx, "student-9")
		require.True(t, errs.Is(err, userdir.ErrUserNotFound))

		backing.Add("student-9", "Nia New")
		_, err = dir.DisplayName(ctx, "student-9")
		assert.True(t, errs.Is(err, userdir.ErrUserNotFound), "got %v", err)

		delete(cache.values, "userdir:student-9")
		name, err := dir.DisplayName(ctx, "student-9")
		require.NoError(t, err)
		assert.Equal(t, "Nia New", name)
	})
}
