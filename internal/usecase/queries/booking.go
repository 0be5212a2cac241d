package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type BookingQueries interface {
	// GetByID returns the booking only to one of its participants.
	GetByID(ctx context.Context, actorID, bookingID string) (*BookingView, error)
	ListByStudent(ctx context.Context, studentID string) ([]BookingView, error)
	ListByTutor(ctx context.Context, tutorID string) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
	loc *time.Location
}

func NewBookingQueries(uow shared.UnitOfWork, loc *time.Location) BookingQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingQueriesImpl{uow: uow, loc: loc}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID string) (*BookingView, error) {
	var view BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Wrap(err, "booking not found"), errs.ErrNotFound)
			}
			return err
		}
		if !b.IsParticipant(actorID) {
			return errs.Mark(errs.Newf("user %s is not a participant of booking %s", actorID, bookingID), errs.ErrForbidden)
		}
		view = NewBookingView(b, q.loc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *bookingQueriesImpl) ListByStudent(ctx context.Context, studentID string) ([]BookingView, error) {
	return q.list(ctx, func(ctx context.Context, tx shared.Tx) ([]*booking.Booking, error) {
		return tx.Bookings().ListByStudent(ctx, studentID)
	})
}

func (q *bookingQueriesImpl) ListByTutor(ctx context.Context, tutorID string) ([]BookingView, error) {
	return q.list(ctx, func(ctx context.Context, tx shared.Tx) ([]*booking.Booking, error) {
		return tx.Bookings().ListByTutor(ctx, tutorID)
	})
}

func (q *bookingQueriesImpl) list(ctx context.Context, load func(context.Context, shared.Tx) ([]*booking.Booking, error)) ([]BookingView, error) {
	views := make([]BookingView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings, err := load(ctx, tx)
		if err != nil {
			return err
		}
		for _, b := range bookings {
			views = append(views, NewBookingView(b, q.loc))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
