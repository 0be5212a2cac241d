package commands

import (
	"context"
	"log/slog"
	"time"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase/shared"
)

var ErrUnknownUser = errs.New("unknown user")

// Settings are the scheduling knobs shared by every command.
type Settings struct {
	// Location is the zone tutors' calendar dates and wall-clock times are read in.
	Location       *time.Location
	HelpRequestTTL time.Duration
}

// Deps bundles the collaborators every command use case needs.
type Deps struct {
	UoW      shared.UnitOfWork
	Users    shared.UserDirectory
	IDs      idgen.Generator
	Clock    clock.Clock
	Settings Settings
	Notifier *Notifier
	Logger   *slog.Logger
}

func (d Deps) location() *time.Location {
	if d.Settings.Location == nil {
		return time.UTC
	}
	return d.Settings.Location
}

// ensureKnown rejects ids the user directory has never heard of.
func (d Deps) ensureKnown(ctx context.Context, field, userID string) error {
	if userID == "" {
		return errs.Validation(field, "required")
	}
	ok, err := d.Users.Exists(ctx, userID)
	if err != nil {
		return errs.Wrap(err, "user directory lookup")
	}
	if !ok {
		return errs.Mark(errs.Wrap(ErrUnknownUser, field+" "+userID), errs.ErrValidation)
	}
	return nil
}

// consumeSlot removes a live slot inside tx. An empty tutorID means the slot's own tutor.
func consumeSlot(ctx context.Context, tx shared.Tx, slotID, tutorID string) (*slot.Slot, error) {
	consumed, err := tx.Slots().ConsumeIfAvailable(ctx, slotID, tutorID)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(errs.Wrap(err, "slot "+slotID), errs.ErrSlotUnavailable)
		}
		return nil, asNotFound(err, "slot")
	}
	return consumed, nil
}

func asNotFound(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrap(err, what+" not found"), errs.ErrNotFound)
	}
	return err
}

// asConflict translates a lost conditional update into kind.
func asConflict(err error, kind error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(errs.Wrap(err, "concurrent update"), kind)
	}
	return err
}
