// Package memstore is an in-process implementation of the scheduling unit of work.
// One mutex serialises units of work; a failed unit restores the snapshot taken
// when it started, so partial writes are never observed.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/usecase/shared"
)

// Store keeps immutable clones of every record; callers never share pointers with it.
type Store struct {
	mu     sync.RWMutex
	state  state
	logger *slog.Logger
}

type state struct {
	slots map[string]*slot.Slot
	// retired remembers removed slot ids so late consumers see a conflict, not an unknown id.
	retired  map[string]string
	bookings map[string]*booking.Booking
	requests map[string]*helprequest.HelpRequest
}

func New(logger *slog.Logger) *Store {
	return &Store{
		state: state{
			slots:    map[string]*slot.Slot{},
			retired:  map[string]string{},
			bookings: map[string]*booking.Booking{},
			requests: map[string]*helprequest.HelpRequest{},
		},
		logger: logger,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state.copy()
	if err := fn(ctx, &memTx{st: &s.state}); err != nil {
		s.state = snap
		s.logger.Debug("memstore unit of work rolled back", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &memTx{st: &s.state, readOnly: true})
}

func (st state) copy() state {
	out := state{
		slots:    make(map[string]*slot.Slot, len(st.slots)),
		retired:  make(map[string]string, len(st.retired)),
		bookings: make(map[string]*booking.Booking, len(st.bookings)),
		requests: make(map[string]*helprequest.HelpRequest, len(st.requests)),
	}
	for k, v := range st.slots {
		out.slots[k] = v
	}
	for k, v := range st.retired {
		out.retired[k] = v
	}
	for k, v := range st.bookings {
		out.bookings[k] = v
	}
	for k, v := range st.requests {
		out.requests[k] = v
	}
	return out
}

type memTx struct {
	st       *state
	readOnly bool
}

func (t *memTx) Slots() shared.SlotRepository               { return &slotRepo{tx: t} }
func (t *memTx) Bookings() shared.BookingRepository         { return &bookingRepo{tx: t} }
func (t *memTx) HelpRequests() shared.HelpRequestRepository { return &helpRequestRepo{tx: t} }

func (t *memTx) writable(op string) error {
	if t.readOnly {
		return infra.NewRepoErr(infra.KindDBFailure, op+": read-only unit of work", nil)
	}
	return nil
}
