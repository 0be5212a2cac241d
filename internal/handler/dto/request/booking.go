package request

import (
	"peer-tutor-scheduler/internal/domain/booking"
	"peer-tutor-scheduler/internal/usecase/commands"
)

type BookDirectlyRequest struct {
	SlotID          string `json:"slotId" binding:"required"`
	Subject         string `json:"subject" binding:"required,max=120"`
	SpecificTopic   string `json:"specificTopic,omitempty" binding:"max=200"`
	AdditionalNotes string `json:"additionalNotes,omitempty" binding:"max=2000"`
}

func (r BookDirectlyRequest) ToDetails() commands.SessionDetails {
	return commands.SessionDetails{
		Subject:         r.Subject,
		SpecificTopic:   r.SpecificTopic,
		AdditionalNotes: r.AdditionalNotes,
	}
}

// CreateBookingRequest records a session without consuming a slot. StudentID
// defaults to the caller.
type CreateBookingRequest struct {
	TutorID         string `json:"tutorId" binding:"required"`
	StudentID       string `json:"studentId,omitempty"`
	Subject         string `json:"subject" binding:"required,max=120"`
	SpecificTopic   string `json:"specificTopic,omitempty" binding:"max=200"`
	AdditionalNotes string `json:"additionalNotes,omitempty" binding:"max=2000"`
	ScheduledDate   string `json:"scheduledDate" binding:"required,ymd"`
	ScheduledTime   string `json:"scheduledTime" binding:"required,hhmm"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1,max=600"`
	Format          string `json:"format,omitempty" binding:"omitempty,oneof=Online InPerson"`
	Location        string `json:"location,omitempty" binding:"max=200"`
	Status          string `json:"status,omitempty" binding:"omitempty,oneof=pending completed"`
}

func (r CreateBookingRequest) ToDraft(actorID string) booking.Draft {
	studentID := r.StudentID
	if studentID == "" {
		studentID = actorID
	}
	return booking.Draft{
		StudentID:       studentID,
		TutorID:         r.TutorID,
		Subject:         r.Subject,
		SpecificTopic:   r.SpecificTopic,
		AdditionalNotes: r.AdditionalNotes,
		ScheduledDate:   r.ScheduledDate,
		ScheduledTime:   r.ScheduledTime,
		DurationMinutes: r.DurationMinutes,
		Format:          r.Format,
		Location:        r.Location,
		Status:          booking.Status(r.Status),
	}
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ToStatus leaves vocabulary checks to the domain so an unknown status is a validation error.
func (r TransitionRequest) ToStatus() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}
