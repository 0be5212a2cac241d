//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "peer-tutor-scheduler/internal/handler/dto/response"
	"peer-tutor-scheduler/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViews(t *testing.T) {
	at := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	claimer := "tutor-1"

	t.Run("booking keeps timestamps", func(t *testing.T) {
		view := &queries.BookingView{BookingID: "bkg_1", Status: "cancelled", ScheduledAt: at, CancelledAt: &at}
		res := resdto.FromBookingView(view)
		assert.Equal(t, "bkg_1", res.BookingID)
		assert.Equal(t, at, res.ScheduledAt)
		require.NotNil(t, res.CancelledAt)
		assert.Equal(t, at, *res.CancelledAt)
		assert.Nil(t, res.ConfirmedAt)
	})

	t.Run("help request keeps the claimer", func(t *testing.T) {
		view := &queries.HelpRequestView{RequestID: "hlp_1", ClaimedBy: &claimer, ExpiresAt: at}
		res := resdto.FromHelpRequestView(view)
		require.NotNil(t, res.ClaimedBy)
		assert.Equal(t, "tutor-1", *res.ClaimedBy)
		assert.Equal(t, at, res.ExpiresAt)
	})

	t.Run("empty lists stay empty arrays", func(t *testing.T) {
		res := resdto.FromSlotViews([]queries.SlotView{})
		assert.NotNil(t, res.Slots)
		assert.Empty(t, res.Slots)
	})

	t.Run("slot list", func(t *testing.T) {
		res := resdto.FromSlotViews([]queries.SlotView{{SlotID: "slot_a"}, {SlotID: "slot_b"}})
		require.Len(t, res.Slots, 2)
		assert.Equal(t, "slot_b", res.Slots[1].SlotID)
	})
}
