// Package notify holds the NotificationSink adapters.
package notify

import (
	"time"

	"peer-tutor-scheduler/internal/domain/event"

	"github.com/google/uuid"
)

func newEnvelope(userID string, eventType event.Type, payload event.Payload, now time.Time) event.Envelope {
	return event.Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}
