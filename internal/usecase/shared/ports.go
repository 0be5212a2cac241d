package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"peer-tutor-scheduler/internal/domain/event"
)

// NotificationSink renders and stores user-facing notifications.
type NotificationSink interface {
	Emit(ctx context.Context, userID string, eventType event.Type, payload event.Payload) error
}

// UserDirectory answers identity questions about ids referenced by scheduling records.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
	DisplayName(ctx context.Context, userID string) (string, error)
}
