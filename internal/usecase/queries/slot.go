package queries

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot_mock.go -package=queriesmock

import (
	"context"

	"peer-tutor-scheduler/internal/usecase/shared"
)

type SlotQueries interface {
	ListByTutor(ctx context.Context, tutorID string) ([]SlotView, error)
}

type slotQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSlotQueries(uow shared.UnitOfWork) SlotQueries {
	return &slotQueriesImpl{uow: uow}
}

func (q *slotQueriesImpl) ListByTutor(ctx context.Context, tutorID string) ([]SlotView, error) {
	views := make([]SlotView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots, err := tx.Slots().ListByTutor(ctx, tutorID)
		if err != nil {
			return err
		}
		for _, s := range slots {
			views = append(views, NewSlotView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
