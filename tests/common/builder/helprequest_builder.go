//go:build unit || e2e

package builder

import (
	"time"

	"peer-tutor-scheduler/internal/domain/helprequest"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
)

type HelpRequestBuilder struct {
	ID              string
	StudentID       string
	Subject         string
	Topic           string
	Description     string
	Urgency         string
	PreferredFormat string
	Now             time.Time
	TTL             time.Duration
}

func NewHelpRequestBuilder() *HelpRequestBuilder {
	return &HelpRequestBuilder{
		ID:          "hlp_test0000000001",
		StudentID:   "student-1",
		Subject:     "Calculus",
		Topic:       "Chain rule",
		Description: "I keep mixing up inner and outer derivatives.",
		Urgency:     string(helprequest.UrgencyMedium),
		Now:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		TTL:         helprequest.DefaultTTL,
	}
}

func (b *HelpRequestBuilder) With(mutate func(*HelpRequestBuilder)) *HelpRequestBuilder {
	mutate(b)
	return b
}

func (b *HelpRequestBuilder) WithID(id string) *HelpRequestBuilder {
	b.ID = id
	return b
}

func (b *HelpRequestBuilder) WithNow(now time.Time) *HelpRequestBuilder {
	b.Now = now
	return b
}

func (b *HelpRequestBuilder) WithStudentID(id string) *HelpRequestBuilder {
	b.StudentID = id
	return b
}

func (b *HelpRequestBuilder) WithUrgency(u string) *HelpRequestBuilder {
	b.Urgency = u
	return b
}

// Build methods
func (b *HelpRequestBuilder) BuildDraft() helprequest.Draft {
	return helprequest.Draft{
		StudentID:       b.StudentID,
		Subject:         b.Subject,
		Topic:           b.Topic,
		Description:     b.Description,
		Urgency:         b.Urgency,
		PreferredFormat: b.PreferredFormat,
	}
}

func (b *HelpRequestBuilder) BuildDomain() (*helprequest.HelpRequest, error) {
	return helprequest.NewHelpRequest(b.ID, b.BuildDraft(), b.Now, b.TTL)
}

func (b *HelpRequestBuilder) MustBuildDomain() *helprequest.HelpRequest {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *HelpRequestBuilder) BuildRequestDTO() reqdto.PostHelpRequestRequest {
	return reqdto.PostHelpRequestRequest{
		Subject:         b.Subject,
		Topic:           b.Topic,
		Description:     b.Description,
		Urgency:         b.Urgency,
		PreferredFormat: b.PreferredFormat,
	}
}
