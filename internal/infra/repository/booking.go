package repository

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/infra/repository/converter"
	"peer-tutor-scheduler/internal/pkg/pgconv"
)

const (
	insertBookingSQL = `INSERT INTO bookings (` + converter.BookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	findBookingSQL         = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE booking_id = $1`
	updateBookingStatusSQL = `UPDATE bookings
		SET status = $2, confirmed_at = $3, completed_at = $4, cancelled_at = $5, updated_at = $6
		WHERE booking_id = $1 AND status = $7`
	listBookingsByStudentSQL = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE student_id = $1 ORDER BY scheduled_at, booking_id`
	listBookingsByTutorSQL = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE tutor_id = $1 ORDER BY scheduled_at, booking_id`
)

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: dbtx, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.db.Exec(ctx, insertBookingSQL, converter.BookingToInfra(b)...); err != nil {
		return infra.FromDBError(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, bookingID string) (*booking.Booking, error) {
	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, findBookingSQL, bookingID).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.FromDBError(r.logger, "booking "+bookingID, err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL,
		b.ID(),
		b.Status().String(),
		pgconv.TimePtrToPgtype(b.ConfirmedAt()),
		pgconv.TimePtrToPgtype(b.CompletedAt()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
		from.String(),
	)
	if err != nil {
		return infra.FromDBError(r.logger, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "booking "+b.ID()+" is no longer "+from.String(), nil)
	}
	return nil
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentID string) ([]*booking.Booking, error) {
	return r.list(ctx, listBookingsByStudentSQL, studentID)
}

func (r *BookingRepository) ListByTutor(ctx context.Context, tutorID string) ([]*booking.Booking, error) {
	return r.list(ctx, listBookingsByTutorSQL, tutorID)
}

func (r *BookingRepository) list(ctx context.Context, query, userID string) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.FromDBError(r.logger, "failed to list bookings", err)
	}
	defer rows.Close()

	out := make([]*booking.Booking, 0)
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.FromDBError(r.logger, "failed to scan booking", err)
		}
		out = append(out, converter.BookingToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.FromDBError(r.logger, "failed to iterate bookings", err)
	}
	return out, nil
}
