package commands

//go:generate mockgen -source=helprequest.go -destination=../../../tests/mock/commands/helprequest_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type ClaimResult struct {
	Request *helprequest.HelpRequest
	Booking *booking.Booking
}

type HelpRequestCommands interface {
	Post(ctx context.Context, d helprequest.Draft) (*helprequest.HelpRequest, error)
	// Claim consumes the tutor's slot, books the session and marks the request
	// claimed in one unit of work. Nothing is written when any step fails.
	Claim(ctx context.Context, requestID, tutorID, slotID, notes string) (*ClaimResult, error)
	Resolve(ctx context.Context, requestID, actorID string) (*helprequest.HelpRequest, error)
	// Withdraw deletes an open request on behalf of the student who posted it.
	// A claim that commits first wins and the withdrawal reports ALREADY_CLAIMED.
	Withdraw(ctx context.Context, requestID, studentID string) error
}

type helpRequestCommandsImpl struct {
	Deps
}

func NewHelpRequestCommands(d Deps) HelpRequestCommands {
	return &helpRequestCommandsImpl{Deps: d}
}

func (uc *helpRequestCommandsImpl) Post(ctx context.Context, d helprequest.Draft) (*helprequest.HelpRequest, error) {
	if err := uc.ensureKnown(ctx, "studentId", d.StudentID); err != nil {
		return nil, err
	}
	id, err := uc.IDs.NewID(idgen.PrefixHelpRequest)
	if err != nil {
		return nil, err
	}
	r, err := helprequest.NewHelpRequest(id, d, uc.Clock.Now(), uc.Settings.HelpRequestTTL)
	if err != nil {
		return nil, err
	}

	err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.HelpRequests().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("help request posted",
		slog.String("request_id", r.ID()),
		slog.String("urgency", r.Urgency().String()),
	)
	return r, nil
}

func (uc *helpRequestCommandsImpl) Claim(ctx context.Context, requestID, tutorID, slotID, notes string) (*ClaimResult, error) {
	if err := uc.ensureKnown(ctx, "tutorId", tutorID); err != nil {
		return nil, err
	}
	bookingID, err := uc.IDs.NewID(idgen.PrefixBooking)
	if err != nil {
		return nil, err
	}

	var result *ClaimResult
	err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.Clock.Now()

		req, ferr := tx.HelpRequests().FindByIDForUpdate(ctx, requestID)
		if ferr != nil {
			return asNotFound(ferr, "help request")
		}
		if cerr := req.EnsureClaimable(tutorID, now); cerr != nil {
			return cerr
		}

		s, cerr := consumeSlot(ctx, tx, slotID, tutorID)
		if cerr != nil {
			return cerr
		}

		b, berr := booking.NewBooking(&booking.Services{Clock: uc.Clock, Location: uc.location()}, bookingID, booking.Draft{
			StudentID:       req.StudentID(),
			TutorID:         tutorID,
			Subject:         req.Subject(),
			SpecificTopic:   req.Topic(),
			AdditionalNotes: notes,
			Slot:            s,
			LinkedRequestID: req.ID(),
		})
		if berr != nil {
			return berr
		}
		if berr = tx.Bookings().Create(ctx, b); berr != nil {
			return berr
		}

		if cerr = req.Claim(tutorID, b.ID(), now); cerr != nil {
			return cerr
		}
		if uerr := tx.HelpRequests().Update(ctx, req, helprequest.StatusOpen); uerr != nil {
			return asConflict(uerr, errs.ErrAlreadyClaimed)
		}

		result = &ClaimResult{Request: req, Booking: b}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("help request claimed",
		slog.String("request_id", result.Request.ID()),
		slog.String("booking_id", result.Booking.ID()),
		slog.String("tutor_id", tutorID),
	)
	uc.Notifier.HelpRequestClaimed(ctx, result.Request, result.Booking)
	return result, nil
}

func (uc *helpRequestCommandsImpl) Resolve(ctx context.Context, requestID, actorID string) (*helprequest.HelpRequest, error) {
	var resolved *helprequest.HelpRequest
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.HelpRequests().FindByIDForUpdate(ctx, requestID)
		if ferr != nil {
			return asNotFound(ferr, "help request")
		}
		if rerr := req.Resolve(actorID, uc.Clock.Now()); rerr != nil {
			return rerr
		}
		if uerr := tx.HelpRequests().Update(ctx, req, helprequest.StatusClaimed); uerr != nil {
			return asConflict(uerr, errs.ErrAlreadyResolved)
		}
		resolved = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (uc *helpRequestCommandsImpl) Withdraw(ctx context.Context, requestID, studentID string) error {
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.HelpRequests().FindByIDForUpdate(ctx, requestID)
		if ferr != nil {
			return asNotFound(ferr, "help request")
		}
		if werr := req.EnsureWithdrawable(studentID); werr != nil {
			return werr
		}
		if derr := tx.HelpRequests().DeleteOpen(ctx, requestID); derr != nil {
			return asConflict(derr, errs.ErrAlreadyClaimed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.Logger.Info("help request withdrawn",
		slog.String("request_id", requestID),
		slog.String("student_id", studentID),
	)
	return nil
}
