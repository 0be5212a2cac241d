package notify

import (
	"context"

	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/pkg/errs"
	"peer-tutor-scheduler/internal/usecase/shared"
)

// Fanout delivers each event to every sink, even after one fails.
type Fanout []shared.NotificationSink

func (f Fanout) Emit(ctx context.Context, userID string, eventType event.Type, payload event.Payload) error {
	var failures []error
	for _, sink := range f {
		if err := sink.Emit(ctx, userID, eventType, payload); err != nil {
			failures = append(failures, err)
		}
	}
	return errs.Join(failures...)
}
