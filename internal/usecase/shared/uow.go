package shared

import (
	"context"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/domain/slot"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// Returning an error from fn discards every write made through tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	HelpRequests() HelpRequestRepository
}

type SlotRepository interface {
	// ReplaceForTutor retires every live slot of the tutor, then inserts slots.
	ReplaceForTutor(ctx context.Context, tutorID string, slots []*slot.Slot) error
	ListByTutor(ctx context.Context, tutorID string) ([]*slot.Slot, error)
	FindByID(ctx context.Context, slotID string) (*slot.Slot, error)
	// ConsumeIfAvailable removes the slot only if it is live, unblocked and
	// belongs to tutorID; an empty tutorID accepts any owner. A live or retired
	// slot that cannot be consumed is a CONFLICT; an id never issued is NOT_FOUND.
	ConsumeIfAvailable(ctx context.Context, slotID, tutorID string) (*slot.Slot, error)
	// Delete retires a live slot owned by tutorID; anything else is NOT_FOUND.
	Delete(ctx context.Context, slotID, tutorID string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, bookingID string) (*booking.Booking, error)
	// UpdateStatus persists b only while the stored status still equals from.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	ListByStudent(ctx context.Context, studentID string) ([]*booking.Booking, error)
	ListByTutor(ctx context.Context, tutorID string) ([]*booking.Booking, error)
}

type HelpRequestRepository interface {
	Create(ctx context.Context, r *helprequest.HelpRequest) error
	FindByID(ctx context.Context, requestID string) (*helprequest.HelpRequest, error)
	// FindByIDForUpdate locks the request row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, requestID string) (*helprequest.HelpRequest, error)
	// Update persists r only while the stored status still equals from.
	Update(ctx context.Context, r *helprequest.HelpRequest, from helprequest.Status) error
	// DeleteOpen removes the request only while it is still open.
	DeleteOpen(ctx context.Context, requestID string) error
	ListOpen(ctx context.Context, now time.Time) ([]*helprequest.HelpRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]*helprequest.HelpRequest, error)
}
