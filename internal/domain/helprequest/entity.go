package helprequest

import (
	"strings"
	"time"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/pkg/errs"
)

const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrStudentRequired = errs.Validation("studentId", "required")
	ErrSubjectRequired = errs.Validation("subject", "required")
	ErrTopicRequired   = errs.Validation("topic", "required")
	ErrTutorRequired   = errs.Validation("tutorId", "required")
	ErrSelfClaim       = errs.Validation("tutorId", "a student cannot claim their own help request")
	ErrExpired         = errs.Validation("requestId", "help request has expired")
	ErrAlreadyClaimed  = errs.Mark(errs.New("help request is already claimed"), errs.ErrAlreadyClaimed)
	ErrAlreadyResolved = errs.Mark(errs.New("help request is already resolved"), errs.ErrAlreadyResolved)
	ErrNotClaimed      = errs.Mark(errs.New("help request has not been claimed"), errs.ErrInvalidTransition)
	ErrNotParticipant  = errs.Mark(errs.New("only the student or the claiming tutor may resolve"), errs.ErrForbidden)
	ErrNotOwner        = errs.Mark(errs.New("only the student who posted the request may withdraw it"), errs.ErrForbidden)
)

type Draft struct {
	StudentID       string
	Subject         string
	Topic           string
	Description     string
	Urgency         string
	PreferredFormat string
}

type HelpRequest struct {
	id              string
	studentID       string
	subject         string
	topic           string
	description     string
	urgency         Urgency
	preferredFormat slot.Format
	status          Status
	claimedBy       *string
	bookingID       string
	claimedAt       *time.Time
	resolvedBy      *string
	resolvedAt      *time.Time
	expiresAt       time.Time
	createdAt       time.Time
}

func NewHelpRequest(id string, d Draft, now time.Time, ttl time.Duration) (*HelpRequest, error) {
	studentID := strings.TrimSpace(d.StudentID)
	if studentID == "" {
		return nil, ErrStudentRequired
	}
	subject := strings.TrimSpace(d.Subject)
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	topic := strings.TrimSpace(d.Topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	urgency, err := ParseUrgency(d.Urgency)
	if err != nil {
		return nil, err
	}
	var format slot.Format
	if strings.TrimSpace(d.PreferredFormat) != "" {
		if format, err = slot.ParseFormat(d.PreferredFormat); err != nil {
			return nil, err
		}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &HelpRequest{
		id:              id,
		studentID:       studentID,
		subject:         subject,
		topic:           topic,
		description:     strings.TrimSpace(d.Description),
		urgency:         urgency,
		preferredFormat: format,
		status:          StatusOpen,
		expiresAt:       now.Add(ttl),
		createdAt:       now,
	}, nil
}

func ReconstructHelpRequest(
	id, studentID, subject, topic, description string,
	urgency Urgency,
	preferredFormat slot.Format,
	status Status,
	claimedBy *string,
	bookingID string,
	claimedAt *time.Time,
	resolvedBy *string,
	resolvedAt *time.Time,
	expiresAt, createdAt time.Time,
) *HelpRequest {
	return &HelpRequest{
		id:              id,
		studentID:       studentID,
		subject:         subject,
		topic:           topic,
		description:     description,
		urgency:         urgency,
		preferredFormat: preferredFormat,
		status:          status,
		claimedBy:       claimedBy,
		bookingID:       bookingID,
		claimedAt:       claimedAt,
		resolvedBy:      resolvedBy,
		resolvedAt:      resolvedAt,
		expiresAt:       expiresAt,
		createdAt:       createdAt,
	}
}

// EnsureClaimable checks that tutorID may claim the request at now.
func (r *HelpRequest) EnsureClaimable(tutorID string, now time.Time) error {
	switch r.status {
	case StatusClaimed:
		return ErrAlreadyClaimed
	case StatusResolved:
		return ErrAlreadyResolved
	}
	if strings.TrimSpace(tutorID) == "" {
		return ErrTutorRequired
	}
	if tutorID == r.studentID {
		return ErrSelfClaim
	}
	if r.IsExpired(now) {
		return ErrExpired
	}
	return nil
}

func (r *HelpRequest) Claim(tutorID, bookingID string, now time.Time) error {
	if err := r.EnsureClaimable(tutorID, now); err != nil {
		return err
	}
	claimer := tutorID
	claimedAt := now
	r.status = StatusClaimed
	r.claimedBy = &claimer
	r.bookingID = bookingID
	r.claimedAt = &claimedAt
	return nil
}

func (r *HelpRequest) Resolve(actorID string, now time.Time) error {
	switch r.status {
	case StatusOpen:
		return ErrNotClaimed
	case StatusResolved:
		return ErrAlreadyResolved
	}
	if actorID != r.studentID && actorID != r.ClaimedBy() {
		return ErrNotParticipant
	}
	resolver := actorID
	resolvedAt := now
	r.status = StatusResolved
	r.resolvedBy = &resolver
	r.resolvedAt = &resolvedAt
	return nil
}

// EnsureWithdrawable checks that studentID may withdraw the request. Only
// the owner may, and only while nobody has claimed it.
func (r *HelpRequest) EnsureWithdrawable(studentID string) error {
	if studentID != r.studentID {
		return ErrNotOwner
	}
	switch r.status {
	case StatusClaimed:
		return ErrAlreadyClaimed
	case StatusResolved:
		return ErrAlreadyResolved
	}
	return nil
}

func (r *HelpRequest) IsExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

func (r *HelpRequest) ID() string                   { return r.id }
func (r *HelpRequest) StudentID() string            { return r.studentID }
func (r *HelpRequest) Subject() string              { return r.subject }
func (r *HelpRequest) Topic() string                { return r.topic }
func (r *HelpRequest) Description() string          { return r.description }
func (r *HelpRequest) Urgency() Urgency             { return r.urgency }
func (r *HelpRequest) PreferredFormat() slot.Format { return r.preferredFormat }
func (r *HelpRequest) Status() Status               { return r.status }
func (r *HelpRequest) ClaimedByPtr() *string        { return r.claimedBy }
func (r *HelpRequest) BookingID() string            { return r.bookingID }
func (r *HelpRequest) ClaimedAt() *time.Time        { return r.claimedAt }
func (r *HelpRequest) ResolvedByPtr() *string       { return r.resolvedBy }
func (r *HelpRequest) ResolvedAt() *time.Time       { return r.resolvedAt }
func (r *HelpRequest) ExpiresAt() time.Time         { return r.expiresAt }
func (r *HelpRequest) CreatedAt() time.Time         { return r.createdAt }

func (r *HelpRequest) ClaimedBy() string {
	if r.claimedBy == nil {
		return ""
	}
	return *r.claimedBy
}
