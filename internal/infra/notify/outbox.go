package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/errs"
)

const (
	jobKind     = "scheduling_event"
	statusQueue = "queued"
)

// OutboxSink queues events in notification_jobs for an external delivery worker.
type OutboxSink struct {
	db     db.DBTX
	clock  clock.Clock
	logger *slog.Logger
}

func NewOutboxSink(dbtx db.DBTX, clk clock.Clock, logger *slog.Logger) *OutboxSink {
	return &OutboxSink{db: dbtx, clock: clk, logger: logger}
}

func (s *OutboxSink) Emit(ctx context.Context, userID string, eventType event.Type, payload event.Payload) error {
	env := newEnvelope(userID, eventType, payload, s.clock.Now())
	data, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "marshal event envelope")
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, user_id, payload, status, run_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		env.ID, jobKind, eventType.String(), userID, data, statusQueue, env.OccurredAt,
	)
	if err != nil {
		return infra.FromDBError(s.logger, "failed to create notification job", err)
	}
	return nil
}
