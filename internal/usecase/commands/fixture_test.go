//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra/memstore"
	"peer-tutor-scheduler/internal/infra/userdir"
	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"
	"peer-tutor-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type recordedEvent struct {
	UserID  string
	Type    event.Type
	Payload event.Payload
}

type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (s *recordingSink) Emit(_ context.Context, userID string, eventType event.Type, payload event.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{UserID: userID, Type: eventType, Payload: payload})
	return s.err
}

func (s *recordingSink) Events() []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedEvent(nil), s.events...)
}

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) NewID(prefix string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s_%04d", prefix, g.n), nil
}

type fixture struct {
	ctx   context.Context
	clock *clock.MockClock
	users *userdir.StaticDirectory
	sink  *recordingSink

	slots    commands.SlotCommands
	bookings commands.BookingCommands
	board    commands.HelpRequestCommands
	coord    commands.Coordinator

	slotQueries        queries.SlotQueries
	bookingQueries     queries.BookingQueries
	helpRequestQueries queries.HelpRequestQueries
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, nil)
}

// newFixtureWith lets a test decorate the unit of work the commands write through.
func newFixtureWith(t *testing.T, wrap func(shared.UnitOfWork) shared.UnitOfWork) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New(logger)

	var writeUoW shared.UnitOfWork = store
	if wrap != nil {
		writeUoW = wrap(store)
	}

	f := &fixture{
		ctx:   context.Background(),
		clock: clock.NewMockClock(fixtureNow),
		users: userdir.NewStaticDirectory(map[string]string{
			"student-1": "Sam Student",
			"student-2": "Sia Student",
			"tutor-1":   "Tia Tutor",
			"tutor-2":   "Theo Tutor",
		}),
		sink: &recordingSink{},
	}
	settings := commands.Settings{Location: time.UTC, HelpRequestTTL: 7 * 24 * time.Hour}
	deps := commands.Deps{
		UoW:      writeUoW,
		Users:    f.users,
		IDs:      &sequentialIDs{},
		Clock:    f.clock,
		Settings: settings,
		Notifier: commands.NewNotifier(f.sink, f.users, settings, logger),
		Logger:   logger,
	}
	f.slots = commands.NewSlotCommands(deps)
	f.bookings = commands.NewBookingCommands(deps)
	f.board = commands.NewHelpRequestCommands(deps)
	f.coord = commands.NewCoordinator(deps, f.board)

	f.slotQueries = queries.NewSlotQueries(store)
	f.bookingQueries = queries.NewBookingQueries(store, time.UTC)
	f.helpRequestQueries = queries.NewHelpRequestQueries(store, f.clock)
	return f
}

func (f *fixture) publish(t *testing.T, tutorID string, drafts ...slot.Draft) []*slot.Slot {
	t.Helper()
	published, err := f.slots.Publish(f.ctx, tutorID, drafts)
	require.NoError(t, err)
	return published
}

func draft(date, start, end string) slot.Draft {
	return slot.Draft{Date: date, StartTime: start, EndTime: end, Format: string(slot.FormatOnline)}
}

func (f *fixture) liveSlotIDs(t *testing.T, tutorID string) []string {
	t.Helper()
	views, err := f.slotQueries.ListByTutor(f.ctx, tutorID)
	require.NoError(t, err)
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.SlotID)
	}
	return ids
}
