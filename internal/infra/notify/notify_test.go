//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/infra/notify"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMsg struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs []publishedMsg
	err  error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, publishedMsg{subject: subject, data: data})
	return nil
}

type countingSink struct {
	calls int
	err   error
}

func (s *countingSink) Emit(context.Context, string, event.Type, event.Payload) error {
	s.calls++
	return s.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNatsSink_Emit(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	pub := &fakePublisher{}
	sink := notify.NewNatsSink(pub, "scheduling", clock.NewMockClock(now), discard())

	payload := event.Payload{BookingID: "bkg_1", Subject: "Algebra", TutorName: "Tia"}
	require.NoError(t, sink.Emit(context.Background(), "tutor-1", event.SessionBooked, payload))

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "scheduling.SessionBooked", pub.msgs[0].subject)

	var env event.Envelope
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &env))
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, event.SessionBooked, env.Type)
	assert.Equal(t, "tutor-1", env.UserID)
	assert.True(t, now.Equal(env.OccurredAt))
	assert.Equal(t, payload, env.Payload)
}

func TestNatsSink_PublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	sink := notify.NewNatsSink(pub, "", clock.NewRealClock(), discard())

	err := sink.Emit(context.Background(), "student-1", event.BookingConfirmed, event.Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
	assert.Equal(t, "BookingConfirmed", sink.Subject(event.BookingConfirmed))
}

func TestFanout_DeliversToEverySink(t *testing.T) {
	failing := &countingSink{err: errors.New("down")}
	healthy := &countingSink{}
	fan := notify.Fanout{failing, healthy, notify.NewLogSink(discard())}

	var sink shared.NotificationSink = fan
	err := sink.Emit(context.Background(), "student-1", event.SessionCancelled, event.Payload{BookingID: "bkg_1"})

	assert.ErrorContains(t, err, "down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, healthy.calls)
}

func TestFanout_JoinsEveryFailure(t *testing.T) {
	outbox := errors.New("outbox unavailable")
	broker := errors.New("broker unavailable")
	fan := notify.Fanout{&countingSink{err: outbox}, &countingSink{}, &countingSink{err: broker}}

	err := fan.Emit(context.Background(), "tutor-1", event.SessionBooked, event.Payload{BookingID: "bkg_1"})

	assert.ErrorIs(t, err, outbox)
	assert.ErrorIs(t, err, broker)
	assert.NoError(t, notify.Fanout{&countingSink{}}.Emit(context.Background(), "tutor-1", event.SessionBooked, event.Payload{}))
}
