package commands

//go:generate mockgen -source=coordinator.go -destination=../../../tests/mock/commands/coordinator_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type SessionDetails struct {
	Subject         string
	SpecificTopic   string
	AdditionalNotes string
}

// Coordinator runs the multi-store scheduling flows.
type Coordinator interface {
	// BookDirectly consumes slotID and creates a pending booking for studentID in one unit of work.
	BookDirectly(ctx context.Context, studentID, slotID string, details SessionDetails) (*booking.Booking, error)
	ClaimHelpRequest(ctx context.Context, requestID, tutorID, slotID, notes string) (*ClaimResult, error)
}

type coordinatorImpl struct {
	Deps
	board HelpRequestCommands
}

func NewCoordinator(d Deps, board HelpRequestCommands) Coordinator {
	return &coordinatorImpl{Deps: d, board: board}
}

func (uc *coordinatorImpl) BookDirectly(ctx context.Context, studentID, slotID string, details SessionDetails) (*booking.Booking, error) {
	if err := uc.ensureKnown(ctx, "studentId", studentID); err != nil {
		return nil, err
	}
	id, err := uc.IDs.NewID(idgen.PrefixBooking)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, cerr := consumeSlot(ctx, tx, slotID, "")
		if cerr != nil {
			return cerr
		}
		b, berr := booking.NewBooking(&booking.Services{Clock: uc.Clock, Location: uc.location()}, id, booking.Draft{
			StudentID:       studentID,
			Subject:         details.Subject,
			SpecificTopic:   details.SpecificTopic,
			AdditionalNotes: details.AdditionalNotes,
			Slot:            s,
		})
		if berr != nil {
			return berr
		}
		if berr = tx.Bookings().Create(ctx, b); berr != nil {
			return berr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("session booked",
		slog.String("booking_id", created.ID()),
		slog.String("slot_id", slotID),
	)
	uc.Notifier.SlotBooked(ctx, created)
	return created, nil
}

func (uc *coordinatorImpl) ClaimHelpRequest(ctx context.Context, requestID, tutorID, slotID, notes string) (*ClaimResult, error) {
	return uc.board.Claim(ctx, requestID, tutorID, slotID, notes)
}
