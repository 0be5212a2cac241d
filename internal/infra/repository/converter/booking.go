package converter

import (
	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const BookingColumns = `booking_id, student_id, tutor_id, subject, specific_topic, scheduled_at, duration_minutes,
	format, location, status, additional_notes, slot_id, linked_request_id,
	confirmed_at, completed_at, cancelled_at, created_at, updated_at`

type BookingRow struct {
	BookingID       string
	StudentID       string
	TutorID         string
	Subject         string
	SpecificTopic   string
	ScheduledAt     pgtype.Timestamptz
	DurationMinutes int32
	Format          string
	Location        string
	Status          string
	AdditionalNotes string
	SlotID          pgtype.Text
	LinkedRequestID pgtype.Text
	ConfirmedAt     pgtype.Timestamptz
	CompletedAt     pgtype.Timestamptz
	CancelledAt     pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (r *BookingRow) ScanTargets() []any {
	return []any{
		&r.BookingID, &r.StudentID, &r.TutorID, &r.Subject, &r.SpecificTopic, &r.ScheduledAt, &r.DurationMinutes,
		&r.Format, &r.Location, &r.Status, &r.AdditionalNotes, &r.SlotID, &r.LinkedRequestID,
		&r.ConfirmedAt, &r.CompletedAt, &r.CancelledAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func BookingToInfra(b *booking.Booking) []any {
	return []any{
		b.ID(),
		b.StudentID(),
		b.TutorID(),
		b.Subject(),
		b.SpecificTopic(),
		pgconv.TimeToPgtype(b.ScheduledAt()),
		int32(b.DurationMinutes()), // #nosec G115 -- durations are minutes within a day
		b.Format().String(),
		b.Location(),
		b.Status().String(),
		b.AdditionalNotes(),
		pgconv.NullableString(b.SlotID()),
		pgconv.NullableString(b.LinkedRequestID()),
		pgconv.TimePtrToPgtype(b.ConfirmedAt()),
		pgconv.TimePtrToPgtype(b.CompletedAt()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToDomain(r BookingRow) *booking.Booking {
	return booking.ReconstructBooking(
		r.BookingID,
		r.StudentID,
		r.TutorID,
		r.Subject,
		r.SpecificTopic,
		pgconv.TimeFromPgtype(r.ScheduledAt),
		int(r.DurationMinutes),
		slot.Format(r.Format),
		r.Location,
		booking.Status(r.Status),
		r.AdditionalNotes,
		pgconv.StringFromPgtype(r.SlotID),
		pgconv.StringFromPgtype(r.LinkedRequestID),
		pgconv.TimePtrFromPgtype(r.ConfirmedAt),
		pgconv.TimePtrFromPgtype(r.CompletedAt),
		pgconv.TimePtrFromPgtype(r.CancelledAt),
		pgconv.TimeFromPgtype(r.CreatedAt),
		pgconv.TimeFromPgtype(r.UpdatedAt),
	)
}
