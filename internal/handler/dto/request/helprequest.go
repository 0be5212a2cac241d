package request

import "peer-tutor-scheduler/internal/domain/helprequest"

type PostHelpRequestRequest struct {
	Subject         string `json:"subject" binding:"required,max=120"`
	Topic           string `json:"topic" binding:"required,max=200"`
	Description     string `json:"description,omitempty" binding:"max=2000"`
	Urgency         string `json:"urgency" binding:"required"`
	PreferredFormat string `json:"preferredFormat,omitempty" binding:"omitempty,oneof=Online InPerson"`
}

func (r PostHelpRequestRequest) ToDraft(studentID string) helprequest.Draft {
	return helprequest.Draft{
		StudentID:       studentID,
		Subject:         r.Subject,
		Topic:           r.Topic,
		Description:     r.Description,
		Urgency:         r.Urgency,
		PreferredFormat: r.PreferredFormat,
	}
}

type ClaimRequest struct {
	SlotID string `json:"slotId" binding:"required"`
	Notes  string `json:"notes,omitempty" binding:"max=2000"`
}
