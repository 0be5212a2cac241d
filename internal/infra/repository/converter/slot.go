package converter

import (
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// SlotColumns is the select list every SlotRow scan expects.
const SlotColumns = `slot_id, tutor_id, slot_date, start_time, end_time, format, location, is_recurring, is_blocked, created_at`

type SlotRow struct {
	SlotID      string
	TutorID     string
	SlotDate    pgtype.Date
	StartTime   pgtype.Time
	EndTime     pgtype.Time
	Format      string
	Location    string
	IsRecurring bool
	IsBlocked   bool
	CreatedAt   pgtype.Timestamptz
}

func (r *SlotRow) ScanTargets() []any {
	return []any{&r.SlotID, &r.TutorID, &r.SlotDate, &r.StartTime, &r.EndTime, &r.Format, &r.Location, &r.IsRecurring, &r.IsBlocked, &r.CreatedAt}
}

func SlotToInfra(s *slot.Slot) []any {
	return []any{
		s.ID(),
		s.TutorID(),
		pgconv.DateToPgtype(s.Date()),
		pgconv.ClockTimeToPgtype(s.StartTime()),
		pgconv.ClockTimeToPgtype(s.EndTime()),
		s.Format().String(),
		s.Location(),
		s.IsRecurring(),
		s.IsBlocked(),
		pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SlotToDomain(r SlotRow) *slot.Slot {
	return slot.ReconstructSlot(
		r.SlotID,
		r.TutorID,
		pgconv.DateFromPgtype(r.SlotDate),
		pgconv.ClockTimeFromPgtype(r.StartTime),
		pgconv.ClockTimeFromPgtype(r.EndTime),
		slot.Format(r.Format),
		r.Location,
		r.IsRecurring,
		r.IsBlocked,
		pgconv.TimeFromPgtype(r.CreatedAt),
	)
}
