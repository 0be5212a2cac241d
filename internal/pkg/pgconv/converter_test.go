//go:build unit

package pgconv_test

import (
	"database/sql"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := slot.ParseCalendarDate("2025-06-10")
	require.NoError(t, err)

	pd := pgconv.DateToPgtype(d)
	assert.True(t, pd.Valid)
	assert.Equal(t, d, pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestClockTimeRoundTrip(t *testing.T) {
	c, err := slot.ParseClockTime("startTime", "14:30")
	require.NoError(t, err)

	pt := pgconv.ClockTimeToPgtype(c)
	assert.Equal(t, int64(14*60+30)*60_000_000, pt.Microseconds)
	assert.Equal(t, "14:30", pgconv.ClockTimeFromPgtype(pt).String())
}

func TestNullableString(t *testing.T) {
	assert.False(t, pgconv.NullableString("").Valid)
	assert.Equal(t, "slot_1", pgconv.StringFromPgtype(pgconv.NullableString("slot_1")))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	at := time.Date(2025, 6, 10, 14, 0, 0, 0, time.FixedZone("X", 3600))
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&at))
	require.NotNil(t, got)
	assert.True(t, at.Equal(*got))
	assert.Equal(t, time.UTC, got.Location())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(nil))
}
