package queries

import (
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
)

// SlotView represents read-optimized availability slot data
type SlotView struct {
	SlotID      string    `json:"slotId"`
	TutorID     string    `json:"tutorId"`
	Date        string    `json:"date"`
	DayOfWeek   string    `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Format      string    `json:"format"`
	Location    string    `json:"location,omitempty"`
	IsRecurring bool      `json:"isRecurring"`
	IsBlocked   bool      `json:"isBlocked"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingView carries the canonical instant plus its wall-clock rendering in the schedule zone
type BookingView struct {
	BookingID       string     `json:"bookingId"`
	StudentID       string     `json:"studentId"`
	TutorID         string     `json:"tutorId"`
	Subject         string     `json:"subject"`
	SpecificTopic   string     `json:"specificTopic,omitempty"`
	ScheduledDate   string     `json:"scheduledDate"`
	ScheduledTime   string     `json:"scheduledTime"`
	ScheduledAt     time.Time  `json:"scheduledAt"`
	DurationMinutes int        `json:"durationMinutes"`
	Format          string     `json:"format"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	SlotID          string     `json:"slotId,omitempty"`
	LinkedRequestID string     `json:"linkedRequestId,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// HelpRequestView represents read-optimized help request data
type HelpRequestView struct {
	RequestID       string     `json:"requestId"`
	StudentID       string     `json:"studentId"`
	Subject         string     `json:"subject"`
	Topic           string     `json:"topic"`
	Description     string     `json:"description,omitempty"`
	Urgency         string     `json:"urgency"`
	PreferredFormat string     `json:"preferredFormat,omitempty"`
	Status          string     `json:"status"`
	ClaimedBy       *string    `json:"claimedBy"`
	BookingID       string     `json:"bookingId,omitempty"`
	ClaimedAt       *time.Time `json:"claimedAt,omitempty"`
	ResolvedBy      *string    `json:"resolvedBy,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewSlotView(s *slot.Slot) SlotView {
	return SlotView{
		SlotID:      s.ID(),
		TutorID:     s.TutorID(),
		Date:        s.Date().String(),
		DayOfWeek:   s.DayOfWeek().String(),
		StartTime:   s.StartTime().String(),
		EndTime:     s.EndTime().String(),
		Format:      s.Format().String(),
		Location:    s.Location(),
		IsRecurring: s.IsRecurring(),
		IsBlocked:   s.IsBlocked(),
		CreatedAt:   s.CreatedAt(),
	}
}

func NewBookingView(b *booking.Booking, loc *time.Location) BookingView {
	return BookingView{
		BookingID:       b.ID(),
		StudentID:       b.StudentID(),
		TutorID:         b.TutorID(),
		Subject:         b.Subject(),
		SpecificTopic:   b.SpecificTopic(),
		ScheduledDate:   b.ScheduledDate(loc),
		ScheduledTime:   b.ScheduledTime(loc),
		ScheduledAt:     b.ScheduledAt(),
		DurationMinutes: b.DurationMinutes(),
		Format:          b.Format().String(),
		Location:        b.Location(),
		Status:          b.Status().String(),
		AdditionalNotes: b.AdditionalNotes(),
		SlotID:          b.SlotID(),
		LinkedRequestID: b.LinkedRequestID(),
		ConfirmedAt:     b.ConfirmedAt(),
		CompletedAt:     b.CompletedAt(),
		CancelledAt:     b.CancelledAt(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func NewHelpRequestView(r *helprequest.HelpRequest) HelpRequestView {
	return HelpRequestView{
		RequestID:       r.ID(),
		StudentID:       r.StudentID(),
		Subject:         r.Subject(),
		Topic:           r.Topic(),
		Description:     r.Description(),
		Urgency:         r.Urgency().String(),
		PreferredFormat: r.PreferredFormat().String(),
		Status:          r.Status().String(),
		ClaimedBy:       r.ClaimedByPtr(),
		BookingID:       r.BookingID(),
		ClaimedAt:       r.ClaimedAt(),
		ResolvedBy:      r.ResolvedByPtr(),
		ResolvedAt:      r.ResolvedAt(),
		ExpiresAt:       r.ExpiresAt(),
		CreatedAt:       r.CreatedAt(),
	}
}
