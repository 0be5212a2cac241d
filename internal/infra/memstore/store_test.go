//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/infra/memstore"
	"peer-tutor-scheduler/internal/usecase/shared"
	"peer-tutor-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *memstore.Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *StoreTestSuite) within(fn func(tx shared.Tx) error) error {
	return s.store.Within(s.ctx, func(_ context.Context, tx shared.Tx) error { return fn(tx) })
}

func (s *StoreTestSuite) TestRollbackRestoresSnapshot() {
	live := builder.NewSlotBuilder().WithID("slot_a").MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().ReplaceForTutor(s.ctx, live.TutorID(), []*slot.Slot{live})
	}))

	boom := errors.New("boom")
	err := s.within(func(tx shared.Tx) error {
		if _, cerr := tx.Slots().ConsumeIfAvailable(s.ctx, "slot_a", live.TutorID()); cerr != nil {
			return cerr
		}
		return boom
	})
	s.ErrorIs(err, boom)

	s.NoError(s.within(func(tx shared.Tx) error {
		got, ferr := tx.Slots().FindByID(s.ctx, "slot_a")
		s.Require().NoError(ferr)
		s.Equal(live.ID(), got.ID())
		return nil
	}))
}

func (s *StoreTestSuite) TestConsumeIfAvailable() {
	open := builder.NewSlotBuilder().WithID("slot_open").WithTimes("09:00", "10:00").MustBuildDomain()
	blocked := builder.NewSlotBuilder().WithID("slot_blocked").WithTimes("11:00", "12:00").Blocked().MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", []*slot.Slot{open, blocked})
	}))

	cases := []struct {
		name    string
		slotID  string
		tutorID string
		kind    infra.RepositoryErrorKind
	}{
		{name: "blocked slot", slotID: "slot_blocked", tutorID: "tutor-1", kind: infra.KindConflict},
		{name: "other tutor", slotID: "slot_open", tutorID: "tutor-2", kind: infra.KindConflict},
		{name: "never issued", slotID: "slot_missing", tutorID: "tutor-1", kind: infra.KindNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.within(func(tx shared.Tx) error {
				_, cerr := tx.Slots().ConsumeIfAvailable(s.ctx, tc.slotID, tc.tutorID)
				return cerr
			})
			s.True(infra.IsKind(err, tc.kind), "got %v", err)
		})
	}

	s.Run("any owner when tutor is empty", func() {
		got, err := s.consume("slot_open", "")
		s.Require().NoError(err)
		s.Equal("tutor-1", got.TutorID())
		s.Require().NoError(s.within(func(tx shared.Tx) error {
			return tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", []*slot.Slot{open, blocked})
		}))
	})

	s.Run("owner consumes once", func() {
		s.NoError(s.within(func(tx shared.Tx) error {
			_, cerr := tx.Slots().ConsumeIfAvailable(s.ctx, "slot_open", "tutor-1")
			return cerr
		}))
		err := s.within(func(tx shared.Tx) error {
			_, cerr := tx.Slots().ConsumeIfAvailable(s.ctx, "slot_open", "tutor-1")
			return cerr
		})
		s.True(infra.IsKind(err, infra.KindConflict))
	})
}

func (s *StoreTestSuite) consume(slotID, tutorID string) (*slot.Slot, error) {
	var got *slot.Slot
	err := s.within(func(tx shared.Tx) error {
		var cerr error
		got, cerr = tx.Slots().ConsumeIfAvailable(s.ctx, slotID, tutorID)
		return cerr
	})
	return got, err
}

func (s *StoreTestSuite) TestRetiredSlotsConflictInsteadOfNotFound() {
	kept := builder.NewSlotBuilder().WithID("slot_kept").MustBuildDomain()
	gone := builder.NewSlotBuilder().WithID("slot_gone").WithTimes("16:00", "17:00").MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", []*slot.Slot{kept, gone})
	}))
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().Delete(s.ctx, "slot_gone", "tutor-1")
	}))
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", nil)
	}))

	for _, id := range []string{"slot_kept", "slot_gone"} {
		_, err := s.consume(id, "tutor-1")
		s.True(infra.IsKind(err, infra.KindConflict), "%s: got %v", id, err)
	}
}

func (s *StoreTestSuite) TestReplaceForTutorKeepsOtherTutors() {
	mine := builder.NewSlotBuilder().WithID("slot_mine").MustBuildDomain()
	theirs := builder.NewSlotBuilder().WithID("slot_theirs").WithTutorID("tutor-2").MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		if err := tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", []*slot.Slot{mine}); err != nil {
			return err
		}
		return tx.Slots().ReplaceForTutor(s.ctx, "tutor-2", []*slot.Slot{theirs})
	}))

	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.Slots().ReplaceForTutor(s.ctx, "tutor-1", nil)
	}))

	s.NoError(s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		mineLeft, err := tx.Slots().ListByTutor(ctx, "tutor-1")
		s.Require().NoError(err)
		s.Empty(mineLeft)
		theirsLeft, err := tx.Slots().ListByTutor(ctx, "tutor-2")
		s.Require().NoError(err)
		s.Len(theirsLeft, 1)
		return nil
	}))
}

func (s *StoreTestSuite) TestBookingUpdateStatusIsConditional() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error { return tx.Bookings().Create(s.ctx, b) }))

	now := b.CreatedAt().Add(time.Minute)
	first, second := builder.NewBookingBuilder().MustBuildDomain(), builder.NewBookingBuilder().MustBuildDomain()
	s.Require().NoError(first.Transition(booking.StatusConfirmed, now))
	s.Require().NoError(second.Transition(booking.StatusCancelled, now))

	s.NoError(s.within(func(tx shared.Tx) error {
		return tx.Bookings().UpdateStatus(s.ctx, first, booking.StatusPending)
	}))
	err := s.within(func(tx shared.Tx) error {
		return tx.Bookings().UpdateStatus(s.ctx, second, booking.StatusPending)
	})
	s.True(infra.IsKind(err, infra.KindConflict))
}

func (s *StoreTestSuite) TestStoredRecordsAreIsolatedFromCallers() {
	b := builder.NewBookingBuilder().MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error { return tx.Bookings().Create(s.ctx, b) }))

	s.Require().NoError(b.Transition(booking.StatusConfirmed, b.CreatedAt().Add(time.Minute)))

	s.NoError(s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Bookings().FindByID(ctx, b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, got.Status())
		return nil
	}))
}

func (s *StoreTestSuite) TestDeleteOpenHelpRequest() {
	open := builder.NewHelpRequestBuilder().WithID("hlp_open").MustBuildDomain()
	claimed := builder.NewHelpRequestBuilder().WithID("hlp_claimed").MustBuildDomain()
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		if err := tx.HelpRequests().Create(s.ctx, open); err != nil {
			return err
		}
		return tx.HelpRequests().Create(s.ctx, claimed)
	}))
	s.Require().NoError(claimed.Claim("tutor-1", "bkg_1", claimed.CreatedAt().Add(time.Minute)))
	s.Require().NoError(s.within(func(tx shared.Tx) error {
		return tx.HelpRequests().Update(s.ctx, claimed, helprequest.StatusOpen)
	}))

	s.NoError(s.within(func(tx shared.Tx) error { return tx.HelpRequests().DeleteOpen(s.ctx, "hlp_open") }))
	err := s.within(func(tx shared.Tx) error { return tx.HelpRequests().DeleteOpen(s.ctx, "hlp_claimed") })
	s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)
	err = s.within(func(tx shared.Tx) error { return tx.HelpRequests().DeleteOpen(s.ctx, "hlp_open") })
	s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)

	s.NoError(s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		got, ferr := tx.HelpRequests().FindByID(ctx, "hlp_claimed")
		s.Require().NoError(ferr)
		s.Equal(helprequest.StatusClaimed, got.Status())
		return nil
	}))
}

func (s *StoreTestSuite) TestReadOnlyRejectsWrites() {
	err := s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, builder.NewBookingBuilder().MustBuildDomain())
	})
	s.True(infra.IsKind(err, infra.KindDBFailure))
}

func TestListOpenOrdering(t *testing.T) {
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	reqs := []*helprequest.HelpRequest{
		builder.NewHelpRequestBuilder().WithID("hlp_low").WithUrgency("low").WithNow(base).MustBuildDomain(),
		builder.NewHelpRequestBuilder().WithID("hlp_high_new").WithUrgency("high").WithNow(base.Add(time.Hour)).MustBuildDomain(),
		builder.NewHelpRequestBuilder().WithID("hlp_high_old").WithUrgency("high").WithNow(base).MustBuildDomain(),
		builder.NewHelpRequestBuilder().WithID("hlp_expired").WithUrgency("high").WithNow(base.Add(-8 * 24 * time.Hour)).MustBuildDomain(),
	}
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, r := range reqs {
			if err := tx.HelpRequests().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))

	var ids []string
	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		open, err := tx.HelpRequests().ListOpen(ctx, base.Add(2*time.Hour))
		for _, r := range open {
			ids = append(ids, r.ID())
		}
		return err
	}))
	assert.Equal(t, []string{"hlp_high_old", "hlp_high_new", "hlp_low"}, ids)
}

func TestWithinHonoursCancelledContext(t *testing.T) {
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
