// Package event defines the scheduling notifications handed to a NotificationSink.
package event

import "time"

type Type string

const (
	SessionBooked      Type = "SessionBooked"
	BookingConfirmed   Type = "BookingConfirmed"
	SessionCompleted   Type = "SessionCompleted"
	SessionCancelled   Type = "SessionCancelled"
	HelpRequestClaimed Type = "HelpRequestClaimed"
)

func (t Type) String() string {
	return string(t)
}

// Payload carries only what a sink needs to render a message.
type Payload struct {
	BookingID     string    `json:"bookingId,omitempty"`
	RequestID     string    `json:"requestId,omitempty"`
	Subject       string    `json:"subject"`
	Topic         string    `json:"topic,omitempty"`
	StudentName   string    `json:"studentName,omitempty"`
	TutorName     string    `json:"tutorName,omitempty"`
	ScheduledDate string    `json:"scheduledDate,omitempty"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	ScheduledAt   time.Time `json:"scheduledAt,omitzero"`
}

// Envelope is the serialized form published by sinks that forward events.
type Envelope struct {
	ID         string    `json:"id"`
	Type       Type      `json:"eventType"`
	UserID     string    `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    Payload   `json:"payload"`
}
