package commands

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/commands/slot_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type SlotCommands interface {
	// Publish replaces the tutor's live slots with drafts and returns them in (date, startTime) order.
	Publish(ctx context.Context, tutorID string, drafts []slot.Draft) ([]*slot.Slot, error)
	Delete(ctx context.Context, tutorID, slotID string) error
	// Consume removes a live slot of tutorID on its own; bookings consume inside their own unit of work.
	Consume(ctx context.Context, slotID, tutorID string) (*slot.Slot, error)
}

type slotCommandsImpl struct {
	Deps
}

func NewSlotCommands(d Deps) SlotCommands {
	return &slotCommandsImpl{Deps: d}
}

func (uc *slotCommandsImpl) Publish(ctx context.Context, tutorID string, drafts []slot.Draft) ([]*slot.Slot, error) {
	if err := uc.ensureKnown(ctx, "tutorId", tutorID); err != nil {
		return nil, err
	}

	week, err := slot.NewWeek(tutorID, drafts, uc.Clock.Now(), func() (string, error) {
		return uc.IDs.NewID(idgen.PrefixSlot)
	})
	if err != nil {
		return nil, err
	}

	err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if rerr := tx.Slots().ReplaceForTutor(ctx, tutorID, week); rerr != nil {
			if infra.IsKind(rerr, infra.KindDuplicateKey) {
				return errs.Mark(errs.Wrap(rerr, "publish"), errs.ErrValidation)
			}
			return rerr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("slots published", slog.String("tutor_id", tutorID), slog.Int("count", len(week)))
	return week, nil
}

func (uc *slotCommandsImpl) Delete(ctx context.Context, tutorID, slotID string) error {
	return uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return asNotFound(tx.Slots().Delete(ctx, slotID, tutorID), "slot")
	})
}

func (uc *slotCommandsImpl) Consume(ctx context.Context, slotID, tutorID string) (*slot.Slot, error) {
	if tutorID == "" {
		return nil, slot.ErrTutorRequired
	}
	var consumed *slot.Slot
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, cerr := consumeSlot(ctx, tx, slotID, tutorID)
		if cerr != nil {
			return cerr
		}
		consumed = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}
