package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

// Publisher is the subset of *nats.Conn the sink uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// NatsSink publishes each event as a JSON envelope on "<prefix>.<EventType>".
type NatsSink struct {
	conn   Publisher
	prefix string
	clock  clock.Clock
	logger *slog.Logger
}

func NewNatsSink(conn Publisher, prefix string, clk clock.Clock, logger *slog.Logger) *NatsSink {
	return &NatsSink{conn: conn, prefix: prefix, clock: clk, logger: logger}
}

func (s *NatsSink) Emit(_ context.Context, userID string, eventType event.Type, payload event.Payload) error {
	env := newEnvelope(userID, eventType, payload, s.clock.Now())
	data, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "marshal event envelope")
	}

	subject := s.Subject(eventType)
	if err := s.conn.Publish(subject, data); err != nil {
		return errs.Wrap(err, "publish to nats")
	}

	s.logger.Debug("published event to nats", slog.String("subject", subject), slog.String("event_id", env.ID))
	return nil
}

func (s *NatsSink) Subject(eventType event.Type) string {
	if s.prefix == "" {
		return eventType.String()
	}
	return s.prefix + "." + eventType.String()
}

// Connect dials the NATS server with reconnects logged through logger.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("peer-tutor-scheduler"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errs.Wrap(err, "connect to nats")
	}
	return conn, nil
}
