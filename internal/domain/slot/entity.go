package slot

import (
	"sort"
	"strings"
	"time"

	"peer-tutor-scheduler/internal/pkg/errs"
)

var (
	ErrLocationRequired = errs.Validation("location", "required for in-person slots")
	ErrTimeRange        = errs.Validation("endTime", "must be after startTime")
	ErrDuplicateStart   = errs.Validation("slots", "two slots share the same date and start time")
	ErrTutorRequired    = errs.Validation("tutorId", "required")
)

// Draft is the caller-supplied shape of one slot in a publish batch.
type Draft struct {
	Date        string
	StartTime   string
	EndTime     string
	Format      string
	Location    string
	IsRecurring bool
	IsBlocked   bool
}

type Slot struct {
	id          string
	tutorID     string
	date        CalendarDate
	startTime   ClockTime
	endTime     ClockTime
	format      Format
	location    string
	isRecurring bool
	isBlocked   bool
	createdAt   time.Time
}

func NewSlot(id, tutorID string, d Draft, now time.Time) (*Slot, error) {
	if strings.TrimSpace(tutorID) == "" {
		return nil, ErrTutorRequired
	}
	date, err := ParseCalendarDate(d.Date)
	if err != nil {
		return nil, err
	}
	start, err := ParseClockTime("startTime", d.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClockTime("endTime", d.EndTime)
	if err != nil {
		return nil, err
	}
	if start.Minutes() >= end.Minutes() {
		return nil, ErrTimeRange
	}
	format, err := ParseFormat(d.Format)
	if err != nil {
		return nil, err
	}
	location := strings.TrimSpace(d.Location)
	if format == FormatInPerson && location == "" {
		return nil, ErrLocationRequired
	}

	return &Slot{
		id:          id,
		tutorID:     tutorID,
		date:        date,
		startTime:   start,
		endTime:     end,
		format:      format,
		location:    location,
		isRecurring: d.IsRecurring,
		isBlocked:   d.IsBlocked,
		createdAt:   now,
	}, nil
}

func ReconstructSlot(
	id, tutorID string,
	date CalendarDate,
	startTime, endTime ClockTime,
	format Format,
	location string,
	isRecurring, isBlocked bool,
	createdAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		tutorID:     tutorID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		format:      format,
		location:    location,
		isRecurring: isRecurring,
		isBlocked:   isBlocked,
		createdAt:   createdAt,
	}
}

func (s *Slot) ID() string              { return s.id }
func (s *Slot) TutorID() string         { return s.tutorID }
func (s *Slot) Date() CalendarDate      { return s.date }
func (s *Slot) StartTime() ClockTime    { return s.startTime }
func (s *Slot) EndTime() ClockTime      { return s.endTime }
func (s *Slot) Format() Format          { return s.format }
func (s *Slot) Location() string        { return s.location }
func (s *Slot) IsRecurring() bool       { return s.isRecurring }
func (s *Slot) IsBlocked() bool         { return s.isBlocked }
func (s *Slot) CreatedAt() time.Time    { return s.createdAt }
func (s *Slot) DayOfWeek() time.Weekday { return s.date.Weekday() }

func (s *Slot) DurationMinutes() int {
	return s.endTime.Minutes() - s.startTime.Minutes()
}

// StartsAt is the UTC instant the slot begins when its wall clock is read in loc.
func (s *Slot) StartsAt(loc *time.Location) time.Time {
	return At(s.date, s.startTime, loc)
}

func (s *Slot) Bookable() bool {
	return !s.isBlocked
}

// NewWeek validates a publish batch and returns it ordered by (date, startTime).
func NewWeek(tutorID string, drafts []Draft, now time.Time, newID func() (string, error)) ([]*Slot, error) {
	slots := make([]*Slot, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))
	for _, d := range drafts {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		s, err := NewSlot(id, tutorID, d, now)
		if err != nil {
			return nil, err
		}
		key := s.date.String() + "T" + s.startTime.String()
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateStart
		}
		seen[key] = struct{}{}
		slots = append(slots, s)
	}
	SortByStart(slots)
	return slots, nil
}

func SortByStart(slots []*Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].date != slots[j].date {
			return slots[i].date.Before(slots[j].date)
		}
		return slots[i].startTime.Minutes() < slots[j].startTime.Minutes()
	})
}
