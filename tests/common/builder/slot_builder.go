//go:build unit || e2e

package builder

import (
	"time"

	"peer-tutor-scheduler/internal/domain/slot"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
)

type SlotBuilder struct {
	ID          string
	TutorID     string
	Date        string
	StartTime   string
	EndTime     string
	Format      string
	Location    string
	IsRecurring bool
	IsBlocked   bool
	CreatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:        "slot_test0000000001",
		TutorID:   "tutor-1",
		Date:      "2025-06-10",
		StartTime: "14:00",
		EndTime:   "15:00",
		Format:    string(slot.FormatOnline),
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithID(id string) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithTutorID(id string) *SlotBuilder {
	b.TutorID = id
	return b
}

func (b *SlotBuilder) WithDate(date string) *SlotBuilder {
	b.Date = date
	return b
}

func (b *SlotBuilder) WithTimes(start, end string) *SlotBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *SlotBuilder) InPerson(location string) *SlotBuilder {
	b.Format = string(slot.FormatInPerson)
	b.Location = location
	return b
}

func (b *SlotBuilder) Blocked() *SlotBuilder {
	b.IsBlocked = true
	return b
}

// Build methods
func (b *SlotBuilder) BuildDraft() slot.Draft {
	return slot.Draft{
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Format:      b.Format,
		Location:    b.Location,
		IsRecurring: b.IsRecurring,
		IsBlocked:   b.IsBlocked,
	}
}

func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.NewSlot(b.ID, b.TutorID, b.BuildDraft(), b.CreatedAt)
}

func (b *SlotBuilder) MustBuildDomain() *slot.Slot {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *SlotBuilder) BuildRequestDTO() reqdto.SlotRequest {
	return reqdto.SlotRequest{
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Format:      b.Format,
		Location:    b.Location,
		IsRecurring: b.IsRecurring,
		IsBlocked:   b.IsBlocked,
	}
}
