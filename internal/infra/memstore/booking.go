package memstore

import (
	"context"
	"sort"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/infra"
)

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable("create booking"); err != nil {
		return err
	}
	if _, exists := r.tx.st.bookings[b.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking "+b.ID(), nil)
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, bookingID string) (*booking.Booking, error) {
	b, ok := r.tx.st.bookings[bookingID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking "+bookingID, nil)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking, from booking.Status) error {
	if err := r.tx.writable("update booking"); err != nil {
		return err
	}
	stored, ok := r.tx.st.bookings[b.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking "+b.ID(), nil)
	}
	if stored.Status() != from {
		return infra.NewRepoErr(infra.KindConflict, "booking "+b.ID()+" is no longer "+from.String(), nil)
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) ListByStudent(_ context.Context, studentID string) ([]*booking.Booking, error) {
	return r.filter(func(b *booking.Booking) bool { return b.StudentID() == studentID }), nil
}

func (r *bookingRepo) ListByTutor(_ context.Context, tutorID string) ([]*booking.Booking, error) {
	return r.filter(func(b *booking.Booking) bool { return b.TutorID() == tutorID }), nil
}

func (r *bookingRepo) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	out := make([]*booking.Booking, 0)
	for _, b := range r.tx.st.bookings {
		if keep(b) {
			out = append(out, cloneBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt().Equal(out[j].ScheduledAt()) {
			return out[i].ScheduledAt().Before(out[j].ScheduledAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}
