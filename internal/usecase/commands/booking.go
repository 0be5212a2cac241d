package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type BookingCommands interface {
	// Create records a booking without consuming a slot. A completed status backfills a past session.
	Create(ctx context.Context, d booking.Draft) (*booking.Booking, error)
	// Transition moves a booking the actor participates in to status to.
	Transition(ctx context.Context, actorID, bookingID string, to booking.Status) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	Deps
}

func NewBookingCommands(d Deps) BookingCommands {
	return &bookingCommandsImpl{Deps: d}
}

func (uc *bookingCommandsImpl) services() *booking.Services {
	return &booking.Services{Clock: uc.Clock, Location: uc.location()}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, d booking.Draft) (*booking.Booking, error) {
	if err := uc.ensureKnown(ctx, "studentId", d.StudentID); err != nil {
		return nil, err
	}
	if err := uc.ensureKnown(ctx, "tutorId", d.TutorID); err != nil {
		return nil, err
	}

	id, err := uc.IDs.NewID(idgen.PrefixBooking)
	if err != nil {
		return nil, err
	}
	d.Slot = nil
	b, err := booking.NewBooking(uc.services(), id, d)
	if err != nil {
		return nil, err
	}

	err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("booking created",
		slog.String("booking_id", b.ID()),
		slog.String("status", b.Status().String()),
	)
	uc.Notifier.SessionBooked(ctx, b)
	return b, nil
}

func (uc *bookingCommandsImpl) Transition(ctx context.Context, actorID, bookingID string, to booking.Status) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, ferr := tx.Bookings().FindByID(ctx, bookingID)
		if ferr != nil {
			return asNotFound(ferr, "booking")
		}
		if !b.IsParticipant(actorID) {
			return errs.Mark(errs.Newf("user %s is not a participant of booking %s", actorID, bookingID), errs.ErrForbidden)
		}

		from := b.Status()
		if terr := b.Transition(to, uc.Clock.Now()); terr != nil {
			return terr
		}
		if uerr := tx.Bookings().UpdateStatus(ctx, b, from); uerr != nil {
			return asConflict(uerr, errs.ErrInvalidTransition)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("booking transitioned",
		slog.String("booking_id", updated.ID()),
		slog.String("status", updated.Status().String()),
	)
	uc.Notifier.StatusChanged(ctx, updated)
	return updated, nil
}
