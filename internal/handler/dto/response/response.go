package response

import (
	"time"

	"peer-tutor-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	SlotID      string    `json:"slotId"`
	TutorID     string    `json:"tutorId"`
	Date        string    `json:"date"`
	DayOfWeek   string    `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Format      string    `json:"format"`
	Location    string    `json:"location,omitempty"`
	IsRecurring bool      `json:"isRecurring"`
	IsBlocked   bool      `json:"isBlocked"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingResponse struct {
	BookingID       string     `json:"bookingId"`
	StudentID       string     `json:"studentId"`
	TutorID         string     `json:"tutorId"`
	Subject         string     `json:"subject"`
	SpecificTopic   string     `json:"specificTopic,omitempty"`
	ScheduledDate   string     `json:"scheduledDate"`
	ScheduledTime   string     `json:"scheduledTime"`
	ScheduledAt     time.Time  `json:"scheduledAt"`
	DurationMinutes int        `json:"durationMinutes"`
	Format          string     `json:"format"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	SlotID          string     `json:"slotId,omitempty"`
	LinkedRequestID string     `json:"linkedRequestId,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type HelpRequestResponse struct {
	RequestID       string     `json:"requestId"`
	StudentID       string     `json:"studentId"`
	Subject         string     `json:"subject"`
	Topic           string     `json:"topic"`
	Description     string     `json:"description,omitempty"`
	Urgency         string     `json:"urgency"`
	PreferredFormat string     `json:"preferredFormat,omitempty"`
	Status          string     `json:"status"`
	ClaimedBy       *string    `json:"claimedBy"`
	BookingID       string     `json:"bookingId,omitempty"`
	ClaimedAt       *time.Time `json:"claimedAt,omitempty"`
	ResolvedBy      *string    `json:"resolvedBy,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type ClaimResponse struct {
	Request *HelpRequestResponse `json:"request"`
	Booking *BookingResponse     `json:"booking"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type HelpRequestListResponse struct {
	HelpRequests []HelpRequestResponse `json:"helpRequests"`
}

// copyInto maps a query view onto its response shape by field name.
func copyInto[T any](from any) T {
	var to T
	// views and responses share field names and types, so copier cannot fail here
	_ = copier.Copy(&to, from)
	return to
}

func FromSlotView(v queries.SlotView) SlotResponse {
	return copyInto[SlotResponse](v)
}

func FromSlotViews(views []queries.SlotView) SlotListResponse {
	out := make([]SlotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSlotView(v))
	}
	return SlotListResponse{Slots: out}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := copyInto[BookingResponse](v)
	return &res
}

func FromBookingViews(views []queries.BookingView) BookingListResponse {
	out := make([]BookingResponse, 0, len(views))
	for i := range views {
		out = append(out, *FromBookingView(&views[i]))
	}
	return BookingListResponse{Bookings: out}
}

func FromHelpRequestView(v *queries.HelpRequestView) *HelpRequestResponse {
	res := copyInto[HelpRequestResponse](v)
	return &res
}

func FromHelpRequestViews(views []queries.HelpRequestView) HelpRequestListResponse {
	out := make([]HelpRequestResponse, 0, len(views))
	for i := range views {
		out = append(out, *FromHelpRequestView(&views[i]))
	}
	return HelpRequestListResponse{HelpRequests: out}
}
