//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/infra/userdir"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/usecase/commands"
	sharedmock "peer-tutor-scheduler/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokyo := time.FixedZone("JST", 9*60*60)
	services := &booking.Services{Clock: clock.NewMockClock(fixtureNow), Location: tokyo}

	b, err := booking.NewBooking(services, "bkg_0001", booking.Draft{
		StudentID:       "student-1",
		TutorID:         "tutor-unlisted",
		Subject:         "History",
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "08:00",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	t.Run("falls back to ids and renders in the schedule zone", func(t *testing.T) {
		sink := &recordingSink{}
		users := userdir.NewStaticDirectory(map[string]string{"student-1": "Sam Student"})
		n := commands.NewNotifier(sink, users, commands.Settings{Location: tokyo}, logger)

		n.SessionBooked(context.Background(), b)

		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, event.Payload{
			BookingID:     "bkg_0001",
			Subject:       "History",
			StudentName:   "Sam Student",
			TutorName:     "tutor-unlisted",
			ScheduledDate: "2025-06-10",
			ScheduledTime: "08:00",
			ScheduledAt:   time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC),
		}, events[0].Payload)
	})

	t.Run("emits even after the caller's context is cancelled", func(t *testing.T) {
		sink := &recordingSink{}
		users := userdir.NewStaticDirectory(nil)
		n := commands.NewNotifier(sink, users, commands.Settings{}, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n.SessionBooked(ctx, b)

		assert.Len(t, sink.Events(), 1)
	})

	t.Run("cancellation reaches both participants despite failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := sharedmock.NewMockNotificationSink(ctrl)
		users := sharedmock.NewMockUserDirectory(ctrl)

		cancelled, err := booking.NewBooking(services, "bkg_0002", booking.Draft{
			StudentID:       "student-1",
			TutorID:         "tutor-1",
			Subject:         "History",
			ScheduledDate:   "2025-06-10",
			ScheduledTime:   "08:00",
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		require.NoError(t, cancelled.Transition(booking.StatusCancelled, fixtureNow))

		users.EXPECT().DisplayName(gomock.Any(), "student-1").Return("", errors.New("directory down")).Times(1)
		users.EXPECT().DisplayName(gomock.Any(), "tutor-1").Return("Tia Tutor", nil).Times(1)

		var recipients []string
		sink.EXPECT().Emit(gomock.Any(), gomock.Any(), event.SessionCancelled, gomock.Any()).
			DoAndReturn(func(_ context.Context, userID string, _ event.Type, p event.Payload) error {
				recipients = append(recipients, userID)
				assert.Equal(t, "student-1", p.StudentName)
				assert.Equal(t, "Tia Tutor", p.TutorName)
				return errors.New("sink down")
			}).Times(2)

		n := commands.NewNotifier(sink, users, commands.Settings{Location: tokyo}, logger)
		n.StatusChanged(context.Background(), cancelled)

		assert.Equal(t, []string{"student-1", "tutor-1"}, recipients)
	})
}
