package memstore

import (
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
)

func cloneSlot(s *slot.Slot) *slot.Slot {
	return slot.ReconstructSlot(s.ID(), s.TutorID(), s.Date(), s.StartTime(), s.EndTime(),
		s.Format(), s.Location(), s.IsRecurring(), s.IsBlocked(), s.CreatedAt())
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.StudentID(), b.TutorID(), b.Subject(), b.SpecificTopic(),
		b.ScheduledAt(), b.DurationMinutes(), b.Format(), b.Location(), b.Status(),
		b.AdditionalNotes(), b.SlotID(), b.LinkedRequestID(),
		cloneTime(b.ConfirmedAt()), cloneTime(b.CompletedAt()), cloneTime(b.CancelledAt()),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneHelpRequest(r *helprequest.HelpRequest) *helprequest.HelpRequest {
	return helprequest.ReconstructHelpRequest(
		r.ID(), r.StudentID(), r.Subject(), r.Topic(), r.Description(),
		r.Urgency(), r.PreferredFormat(), r.Status(), cloneString(r.ClaimedByPtr()), r.BookingID(),
		cloneTime(r.ClaimedAt()), cloneString(r.ResolvedByPtr()), cloneTime(r.ResolvedAt()),
		r.ExpiresAt(), r.CreatedAt(),
	)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
