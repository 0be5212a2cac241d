//go:build unit || e2e

package builder

import (
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/slot"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	"peer-tutor-scheduler/internal/pkg/clock"
)

type BookingBuilder struct {
	ID              string
	StudentID       string
	TutorID         string
	Subject         string
	SpecificTopic   string
	AdditionalNotes string
	ScheduledDate   string
	ScheduledTime   string
	DurationMinutes int
	Format          string
	Location        string
	Status          booking.Status
	Slot            *slot.Slot
	LinkedRequestID string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              "bkg_test0000000001",
		StudentID:       "student-1",
		TutorID:         "tutor-1",
		Subject:         "Algebra",
		SpecificTopic:   "Factoring",
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 60,
		Format:          string(slot.FormatOnline),
		Now:             time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithSchedule(date, at string) *BookingBuilder {
	b.ScheduledDate = date
	b.ScheduledTime = at
	return b
}

func (b *BookingBuilder) WithSlot(s *slot.Slot) *BookingBuilder {
	b.Slot = s
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

// Build methods
func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		StudentID:       b.StudentID,
		TutorID:         b.TutorID,
		Subject:         b.Subject,
		SpecificTopic:   b.SpecificTopic,
		AdditionalNotes: b.AdditionalNotes,
		Slot:            b.Slot,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		DurationMinutes: b.DurationMinutes,
		Format:          b.Format,
		Location:        b.Location,
		Status:          b.Status,
		LinkedRequestID: b.LinkedRequestID,
	}
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{Clock: clock.NewMockClock(b.Now), Location: time.UTC}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Services(), b.ID, b.BuildDraft())
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildDirectRequestDTO(slotID string) reqdto.BookDirectlyRequest {
	return reqdto.BookDirectlyRequest{
		SlotID:          slotID,
		Subject:         b.Subject,
		SpecificTopic:   b.SpecificTopic,
		AdditionalNotes: b.AdditionalNotes,
	}
}

func (b *BookingBuilder) BuildManualRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TutorID:         b.TutorID,
		StudentID:       b.StudentID,
		Subject:         b.Subject,
		SpecificTopic:   b.SpecificTopic,
		AdditionalNotes: b.AdditionalNotes,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		DurationMinutes: b.DurationMinutes,
		Format:          b.Format,
		Location:        b.Location,
		Status:          string(b.Status),
	}
}
