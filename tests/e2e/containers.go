//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "scheduler"
	pgPassword = "scheduler-e2e"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
)

// endpoint is a container port as seen from the test process.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string {
	return e.Host + ":" + e.Port.Port()
}

// sharedContainer starts one container per test process and stops it with the
// first test that asked for it.
type sharedContainer struct {
	once sync.Once
	ep   endpoint
	err  error
}

func (sc *sharedContainer) get(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) endpoint {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			sc.err = fmt.Errorf("start %s: %w", req.Image, err)
			return
		}
		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := c.Terminate(stopCtx); err != nil {
				slog.Warn("failed to terminate container", slog.String("image", req.Image), slog.String("error", err.Error()))
			}
		})
		sc.ep, sc.err = mappedEndpoint(ctx, c, port)
	})
	require.NoError(t, sc.err)
	return sc.ep
}

func mappedEndpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
)

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func startPostgres(t *testing.T) endpoint {
	return postgresContainer.get(t, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", adminDSN).WithStartupTimeout(time.Minute),
		Labels:     map[string]string{"purpose": "scheduler-e2e"},
	}, pgPort)
}

func startRedis(t *testing.T) endpoint {
	return redisContainer.get(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "scheduler-e2e"},
	}, redisPort)
}
