package commands

import (
	"context"
	"log/slog"
	"time"

	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/domain/event"
	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/usecase/shared"
)

const emitTimeout = 5 * time.Second

// Notifier turns committed scheduling changes into sink events. Sink and
// directory failures are logged and never reach the caller.
type Notifier struct {
	sink     shared.NotificationSink
	users    shared.UserDirectory
	location *time.Location
	logger   *slog.Logger
}

func NewNotifier(sink shared.NotificationSink, users shared.UserDirectory, settings Settings, logger *slog.Logger) *Notifier {
	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{sink: sink, users: users, location: loc, logger: logger}
}

func (n *Notifier) SessionBooked(ctx context.Context, b *booking.Booking) {
	n.emit(ctx, b.TutorID(), event.SessionBooked, n.bookingPayload(ctx, b))
}

// SlotBooked tells the tutor about a booking made from their slot and gives
// the student a receipt for it.
func (n *Notifier) SlotBooked(ctx context.Context, b *booking.Booking) {
	payload := n.bookingPayload(ctx, b)
	n.emit(ctx, b.TutorID(), event.SessionBooked, payload)
	n.emit(ctx, b.StudentID(), event.BookingConfirmed, payload)
}

// StatusChanged notifies the participants affected by b's new status.
func (n *Notifier) StatusChanged(ctx context.Context, b *booking.Booking) {
	payload := n.bookingPayload(ctx, b)
	switch b.Status() {
	case booking.StatusConfirmed:
		n.emit(ctx, b.StudentID(), event.BookingConfirmed, payload)
	case booking.StatusCompleted:
		n.emit(ctx, b.StudentID(), event.SessionCompleted, payload)
	case booking.StatusCancelled:
		n.emit(ctx, b.StudentID(), event.SessionCancelled, payload)
		n.emit(ctx, b.TutorID(), event.SessionCancelled, payload)
	}
}

func (n *Notifier) HelpRequestClaimed(ctx context.Context, r *helprequest.HelpRequest, b *booking.Booking) {
	payload := n.bookingPayload(ctx, b)
	payload.RequestID = r.ID()
	payload.Topic = r.Topic()
	n.emit(ctx, r.StudentID(), event.HelpRequestClaimed, payload)
}

func (n *Notifier) bookingPayload(ctx context.Context, b *booking.Booking) event.Payload {
	return event.Payload{
		BookingID:     b.ID(),
		RequestID:     b.LinkedRequestID(),
		Subject:       b.Subject(),
		Topic:         b.SpecificTopic(),
		StudentName:   n.displayName(ctx, b.StudentID()),
		TutorName:     n.displayName(ctx, b.TutorID()),
		ScheduledDate: b.ScheduledDate(n.location),
		ScheduledTime: b.ScheduledTime(n.location),
		ScheduledAt:   b.ScheduledAt(),
	}
}

func (n *Notifier) displayName(ctx context.Context, userID string) string {
	name, err := n.users.DisplayName(ctx, userID)
	if err != nil || name == "" {
		if err != nil {
			n.logger.Warn("display name lookup failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
		return userID
	}
	return name
}

func (n *Notifier) emit(ctx context.Context, userID string, eventType event.Type, payload event.Payload) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
	defer cancel()

	if err := n.sink.Emit(ctx, userID, eventType, payload); err != nil {
		n.logger.Error("notification emit failed",
			slog.String("event_type", eventType.String()),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}
