package queries

//go:generate mockgen -source=helprequest.go -destination=../../../tests/mock/queries/helprequest_mock.go -package=queriesmock

import (
	"context"

	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/shared"
)

type HelpRequestQueries interface {
	GetByID(ctx context.Context, requestID string) (*HelpRequestView, error)
	// ListOpen returns unexpired open requests, most urgent first and oldest first within an urgency.
	ListOpen(ctx context.Context) ([]HelpRequestView, error)
	ListByStudent(ctx context.Context, studentID string) ([]HelpRequestView, error)
}

type helpRequestQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHelpRequestQueries(uow shared.UnitOfWork, clk clock.Clock) HelpRequestQueries {
	return &helpRequestQueriesImpl{uow: uow, clock: clk}
}

func (q *helpRequestQueriesImpl) GetByID(ctx context.Context, requestID string) (*HelpRequestView, error) {
	var view HelpRequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.HelpRequests().FindByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Wrap(err, "help request not found"), errs.ErrNotFound)
			}
			return err
		}
		view = NewHelpRequestView(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *helpRequestQueriesImpl) ListOpen(ctx context.Context) ([]HelpRequestView, error) {
	now := q.clock.Now()
	return q.list(ctx, func(ctx context.Context, tx shared.Tx) ([]*helprequest.HelpRequest, error) {
		return tx.HelpRequests().ListOpen(ctx, now)
	})
}

func (q *helpRequestQueriesImpl) ListByStudent(ctx context.Context, studentID string) ([]HelpRequestView, error) {
	return q.list(ctx, func(ctx context.Context, tx shared.Tx) ([]*helprequest.HelpRequest, error) {
		return tx.HelpRequests().ListByStudent(ctx, studentID)
	})
}

func (q *helpRequestQueriesImpl) list(ctx context.Context, load func(context.Context, shared.Tx) ([]*helprequest.HelpRequest, error)) ([]HelpRequestView, error) {
	views := make([]HelpRequestView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		requests, err := load(ctx, tx)
		if err != nil {
			return err
		}
		for _, r := range requests {
			views = append(views, NewHelpRequestView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
