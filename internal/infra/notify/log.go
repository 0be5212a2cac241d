package notify

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/event"
)

// LogSink writes every event to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, userID string, eventType event.Type, payload event.Payload) error {
	s.logger.InfoContext(ctx, "notification",
		slog.String("event_type", eventType.String()),
		slog.String("user_id", userID),
		slog.String("booking_id", payload.BookingID),
		slog.String("request_id", payload.RequestID),
		slog.String("subject", payload.Subject),
	)
	return nil
}
