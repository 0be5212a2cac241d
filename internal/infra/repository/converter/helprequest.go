package converter

import (
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const HelpRequestColumns = `request_id, student_id, subject, topic, description, urgency, preferred_format,
	status, claimed_by, booking_id, claimed_at, resolved_by, resolved_at, expires_at, created_at`

type HelpRequestRow struct {
	RequestID       string
	StudentID       string
	Subject         string
	Topic           string
	Description     string
	Urgency         string
	PreferredFormat string
	Status          string
	ClaimedBy       pgtype.Text
	BookingID       pgtype.Text
	ClaimedAt       pgtype.Timestamptz
	ResolvedBy      pgtype.Text
	ResolvedAt      pgtype.Timestamptz
	ExpiresAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
}

func (r *HelpRequestRow) ScanTargets() []any {
	return []any{
		&r.RequestID, &r.StudentID, &r.Subject, &r.Topic, &r.Description, &r.Urgency, &r.PreferredFormat,
		&r.Status, &r.ClaimedBy, &r.BookingID, &r.ClaimedAt, &r.ResolvedBy, &r.ResolvedAt, &r.ExpiresAt, &r.CreatedAt,
	}
}

func HelpRequestToInfra(req *helprequest.HelpRequest) []any {
	return []any{
		req.ID(),
		req.StudentID(),
		req.Subject(),
		req.Topic(),
		req.Description(),
		req.Urgency().String(),
		req.PreferredFormat().String(),
		req.Status().String(),
		pgconv.StringPtrToPgtype(req.ClaimedByPtr()),
		pgconv.NullableString(req.BookingID()),
		pgconv.TimePtrToPgtype(req.ClaimedAt()),
		pgconv.StringPtrToPgtype(req.ResolvedByPtr()),
		pgconv.TimePtrToPgtype(req.ResolvedAt()),
		pgconv.TimeToPgtype(req.ExpiresAt()),
		pgconv.TimeToPgtype(req.CreatedAt()),
	}
}

func HelpRequestToDomain(r HelpRequestRow) *helprequest.HelpRequest {
	return helprequest.ReconstructHelpRequest(
		r.RequestID,
		r.StudentID,
		r.Subject,
		r.Topic,
		r.Description,
		helprequest.Urgency(r.Urgency),
		slot.Format(r.PreferredFormat),
		helprequest.Status(r.Status),
		pgconv.StringPtrFromPgtype(r.ClaimedBy),
		pgconv.StringFromPgtype(r.BookingID),
		pgconv.TimePtrFromPgtype(r.ClaimedAt),
		pgconv.StringPtrFromPgtype(r.ResolvedBy),
		pgconv.TimePtrFromPgtype(r.ResolvedAt),
		pgconv.TimeFromPgtype(r.ExpiresAt),
		pgconv.TimeFromPgtype(r.CreatedAt),
	)
}
