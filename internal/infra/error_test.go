//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"peer-tutor-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDBError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, kind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, kind: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, kind: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, kind: infra.KindDBFailure},
		{name: "anything else", err: errors.New("connection reset"), kind: infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.FromDBError(logger, "load slot", tc.err)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.kind), "expected kind [%v] but got (%v)", tc.kind, err)
			assert.Contains(t, err.Error(), "load slot")
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, infra.FromDBError(logger, "noop", nil))
	})

	t.Run("pg error stays reachable for retry classification", func(t *testing.T) {
		err := infra.FromDBError(logger, "update", &pgconn.PgError{Code: "40P01"})
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "40P01", pgErr.Code)
	})
}

func TestIsKind(t *testing.T) {
	err := infra.NewRepoErr(infra.KindConflict, "slot already consumed", nil)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindConflict))
	assert.Equal(t, "CONFLICT: slot already consumed", err.Error())
}
