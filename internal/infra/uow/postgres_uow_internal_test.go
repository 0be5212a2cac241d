//go:build unit

package uow

import (
	"testing"
	"time"

	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}

func TestShouldRetry(t *testing.T) {
	serialization := infra.NewRepoErr(infra.KindDBFailure, "update booking", &pgconn.PgError{Code: pgErrCodeSerializationFailure})
	deadlock := errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "consume slot")
	unique := &pgconn.PgError{Code: "23505"}

	cases := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "serialization failure through repository error", err: serialization, attempt: 0, want: true},
		{name: "deadlock through wrap", err: deadlock, attempt: 2, want: true},
		{name: "retries exhausted", err: deadlock, attempt: 3, want: false},
		{name: "unique violation", err: unique, attempt: 0, want: false},
		{name: "domain error", err: errs.Mark(errs.New("gone"), errs.ErrSlotUnavailable), attempt: 0, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldRetry(tc.err, tc.attempt, 3))
		})
	}
}
