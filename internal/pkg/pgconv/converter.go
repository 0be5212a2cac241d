package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"peer-tutor-scheduler/internal/domain/slot"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func DateToPgtype(d slot.CalendarDate) pgtype.Date {
	return pgtype.Date{Time: slot.At(d, slot.ClockTime{}, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) slot.CalendarDate {
	if !pd.Valid {
		return slot.CalendarDate{}
	}
	return slot.CalendarDateOf(pd.Time)
}

func ClockTimeToPgtype(c slot.ClockTime) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c.Minutes()) * microsPerMinute, Valid: true}
}

func ClockTimeFromPgtype(pt pgtype.Time) slot.ClockTime {
	minutes := pt.Microseconds / microsPerMinute
	return slot.ClockTimeOf(time.Date(0, 1, 1, int(minutes/60), int(minutes%60), 0, 0, time.UTC))
}

// StringFromPgtype maps NULL to the empty string.
func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	s := pt.String
	return &s
}

// NullableString maps the empty string to NULL.
func NullableString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time.UTC()
	return &t
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
