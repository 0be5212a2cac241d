package booking

import (
	"fmt"
	"strings"
	"time"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/errs"
)

var (
	ErrStudentRequired    = errs.Validation("studentId", "required")
	ErrTutorRequired      = errs.Validation("tutorId", "required")
	ErrSelfBooking        = errs.Validation("studentId", "a tutor cannot book their own session")
	ErrSubjectRequired    = errs.Validation("subject", "required")
	ErrDurationRequired   = errs.Validation("durationMinutes", "must be greater than zero")
	ErrLocationRequired   = errs.Validation("location", "required for in-person sessions")
	ErrInitialStatus      = errs.Validation("status", "a new booking starts as pending or completed")
	ErrSlotTutorMismatch  = errs.Validation("tutorId", "slot belongs to another tutor")
	ErrFutureBackfill     = errs.Validation("status", "only past sessions can be recorded as completed")
	ErrPastDate           = errs.Mark(errs.New("cannot book a session in the past"), errs.ErrPastDate)
	ErrTerminalTransition = errs.Mark(errs.New("booking is in a terminal status"), errs.ErrInvalidTransition)
)

type Services struct {
	Clock clock.Clock
	// Location interprets calendar dates and wall-clock times of drafts.
	Location *time.Location
}

// Draft describes a booking to create. When Slot is set the schedule,
// duration, format and location come from the consumed slot.
type Draft struct {
	StudentID       string
	TutorID         string
	Subject         string
	SpecificTopic   string
	AdditionalNotes string

	Slot *slot.Slot

	ScheduledDate   string
	ScheduledTime   string
	DurationMinutes int
	Format          string
	Location        string

	Status          Status
	LinkedRequestID string
}

type Booking struct {
	id              string
	studentID       string
	tutorID         string
	subject         string
	specificTopic   string
	scheduledAt     time.Time
	durationMinutes int
	format          slot.Format
	location        string
	status          Status
	additionalNotes string
	slotID          string
	linkedRequestID string
	confirmedAt     *time.Time
	completedAt     *time.Time
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(services *Services, id string, d Draft) (*Booking, error) {
	studentID := strings.TrimSpace(d.StudentID)
	tutorID := strings.TrimSpace(d.TutorID)
	if d.Slot != nil && tutorID == "" {
		tutorID = d.Slot.TutorID()
	}
	if studentID == "" {
		return nil, ErrStudentRequired
	}
	if tutorID == "" {
		return nil, ErrTutorRequired
	}
	if studentID == tutorID {
		return nil, ErrSelfBooking
	}
	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	b := &Booking{
		id:              id,
		studentID:       studentID,
		tutorID:         tutorID,
		subject:         subject,
		specificTopic:   strings.TrimSpace(d.SpecificTopic),
		additionalNotes: strings.TrimSpace(d.AdditionalNotes),
		linkedRequestID: d.LinkedRequestID,
	}

	if err := b.schedule(services.Location, d); err != nil {
		return nil, err
	}

	status := d.Status
	if status == "" {
		status = StatusPending
	}
	if status != StatusPending && status != StatusCompleted {
		return nil, ErrInitialStatus
	}

	now := services.Clock.Now()
	switch {
	case status == StatusCompleted && b.scheduledAt.After(now):
		return nil, ErrFutureBackfill
	case status != StatusCompleted && b.scheduledAt.Before(now):
		return nil, ErrPastDate
	}

	b.status = status
	if status == StatusCompleted {
		b.completedAt = &now
	}
	b.createdAt = now
	b.updatedAt = now
	return b, nil
}

func (b *Booking) schedule(loc *time.Location, d Draft) error {
	if d.Slot != nil {
		if d.Slot.TutorID() != b.tutorID {
			return ErrSlotTutorMismatch
		}
		b.scheduledAt = d.Slot.StartsAt(loc)
		b.durationMinutes = d.Slot.DurationMinutes()
		b.format = d.Slot.Format()
		b.location = d.Slot.Location()
		b.slotID = d.Slot.ID()
		return nil
	}

	date, err := slot.ParseCalendarDate(d.ScheduledDate)
	if err != nil {
		return err
	}
	at, err := slot.ParseClockTime("scheduledTime", d.ScheduledTime)
	if err != nil {
		return err
	}
	if d.DurationMinutes <= 0 {
		return ErrDurationRequired
	}
	format := slot.FormatOnline
	if strings.TrimSpace(d.Format) != "" {
		if format, err = slot.ParseFormat(d.Format); err != nil {
			return err
		}
	}
	location := strings.TrimSpace(d.Location)
	if format == slot.FormatInPerson && location == "" {
		return ErrLocationRequired
	}

	b.scheduledAt = slot.At(date, at, loc)
	b.durationMinutes = d.DurationMinutes
	b.format = format
	b.location = location
	return nil
}

func ReconstructBooking(
	id, studentID, tutorID, subject, specificTopic string,
	scheduledAt time.Time,
	durationMinutes int,
	format slot.Format,
	location string,
	status Status,
	additionalNotes, slotID, linkedRequestID string,
	confirmedAt, completedAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		studentID:       studentID,
		tutorID:         tutorID,
		subject:         subject,
		specificTopic:   specificTopic,
		scheduledAt:     scheduledAt.UTC(),
		durationMinutes: durationMinutes,
		format:          format,
		location:        location,
		status:          status,
		additionalNotes: additionalNotes,
		slotID:          slotID,
		linkedRequestID: linkedRequestID,
		confirmedAt:     confirmedAt,
		completedAt:     completedAt,
		cancelledAt:     cancelledAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Transition moves the booking along the status graph and stamps the
// matching timestamp. A timestamp that is already set is never overwritten.
func (b *Booking) Transition(to Status, now time.Time) error {
	if !to.IsValid() {
		return errs.Validation("status", fmt.Sprintf("unknown status %q", to))
	}
	if b.status.IsTerminal() {
		return errs.Wrap(ErrTerminalTransition, fmt.Sprintf("%s -> %s", b.status, to))
	}
	if !b.status.CanTransitionTo(to) {
		return errs.Mark(errs.Newf("cannot move booking from %s to %s", b.status, to), errs.ErrInvalidTransition)
	}

	switch to {
	case StatusConfirmed:
		b.confirmedAt = stampOnce(b.confirmedAt, now)
	case StatusCompleted:
		b.completedAt = stampOnce(b.completedAt, now)
	case StatusCancelled:
		b.cancelledAt = stampOnce(b.cancelledAt, now)
	}
	b.status = to
	b.updatedAt = now
	return nil
}

func stampOnce(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	t := now
	return &t
}

func (b *Booking) IsParticipant(userID string) bool {
	return userID != "" && (userID == b.studentID || userID == b.tutorID)
}

func (b *Booking) ID() string              { return b.id }
func (b *Booking) StudentID() string       { return b.studentID }
func (b *Booking) TutorID() string         { return b.tutorID }
func (b *Booking) Subject() string         { return b.subject }
func (b *Booking) SpecificTopic() string   { return b.specificTopic }
func (b *Booking) ScheduledAt() time.Time  { return b.scheduledAt }
func (b *Booking) DurationMinutes() int    { return b.durationMinutes }
func (b *Booking) Format() slot.Format     { return b.format }
func (b *Booking) Location() string        { return b.location }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) AdditionalNotes() string { return b.additionalNotes }
func (b *Booking) SlotID() string          { return b.slotID }
func (b *Booking) LinkedRequestID() string { return b.linkedRequestID }
func (b *Booking) ConfirmedAt() *time.Time { return b.confirmedAt }
func (b *Booking) CompletedAt() *time.Time { return b.completedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

func (b *Booking) EndsAt() time.Time {
	return b.scheduledAt.Add(time.Duration(b.durationMinutes) * time.Minute)
}

// ScheduledDate and ScheduledTime are presentation views of ScheduledAt in loc.
func (b *Booking) ScheduledDate(loc *time.Location) string {
	return b.scheduledAt.In(orUTC(loc)).Format(slot.DateLayout)
}

func (b *Booking) ScheduledTime(loc *time.Location) string {
	return b.scheduledAt.In(orUTC(loc)).Format(slot.TimeLayout)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
