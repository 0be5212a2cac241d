package request

import "peer-tutor-scheduler/internal/domain/slot"

type SlotRequest struct {
	Date        string `json:"date" binding:"required,ymd"`
	StartTime   string `json:"startTime" binding:"required,hhmm"`
	EndTime     string `json:"endTime" binding:"required,hhmm"`
	Format      string `json:"format" binding:"required,oneof=Online InPerson"`
	Location    string `json:"location,omitempty" binding:"max=200"`
	IsRecurring bool   `json:"isRecurring"`
	IsBlocked   bool   `json:"isBlocked"`
}

type PublishSlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,max=200,dive"`
}

func (r SlotRequest) ToDraft() slot.Draft {
	return slot.Draft{
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Format:      r.Format,
		Location:    r.Location,
		IsRecurring: r.IsRecurring,
		IsBlocked:   r.IsBlocked,
	}
}

func (r PublishSlotsRequest) ToDrafts() []slot.Draft {
	drafts := make([]slot.Draft, 0, len(r.Slots))
	for _, s := range r.Slots {
		drafts = append(drafts, s.ToDraft())
	}
	return drafts
}
