package slot

import (
	"fmt"
	"strings"
	"time"

	"peer-tutor-scheduler/internal/pkg/errs"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Format string

const (
	FormatOnline   Format = "Online"
	FormatInPerson Format = "InPerson"
)

func (f Format) String() string {
	return string(f)
}

func (f Format) IsValid() bool {
	switch f {
	case FormatOnline, FormatInPerson:
		return true
	default:
		return false
	}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimSpace(s))
	if !f.IsValid() {
		return "", errs.Validation("format", fmt.Sprintf("must be %s or %s", FormatOnline, FormatInPerson))
	}
	return f, nil
}

// CalendarDate is a tutor-local day without a zone.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, errs.Validation("date", "must be YYYY-MM-DD")
	}
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d CalendarDate) IsZero() bool {
	return d.year == 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d CalendarDate) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.String() < o.String()
}

// ClockTime is an HH:MM wall-clock time on a 24h dial.
type ClockTime struct {
	minutes int
}

func ParseClockTime(field, s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(TimeLayout) {
		return ClockTime{}, errs.Validation(field, "must be HH:MM")
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return ClockTime{}, errs.Validation(field, "must be HH:MM")
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

// ClockTimeOf keeps the hour and minute of t.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

func (c ClockTime) Minutes() int {
	return c.minutes
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// At combines a calendar date and wall-clock time in loc and returns the UTC instant.
func At(d CalendarDate, c ClockTime, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, c.minutes/60, c.minutes%60, 0, 0, loc).UTC()
}
