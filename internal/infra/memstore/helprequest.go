package memstore

import (
	"context"
	"sort"
	"time"

	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/infra"
)

type helpRequestRepo struct {
	tx *memTx
}

func (r *helpRequestRepo) Create(_ context.Context, req *helprequest.HelpRequest) error {
	if err := r.tx.writable("create help request"); err != nil {
		return err
	}
	if _, exists := r.tx.st.requests[req.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "help request "+req.ID(), nil)
	}
	r.tx.st.requests[req.ID()] = cloneHelpRequest(req)
	return nil
}

func (r *helpRequestRepo) FindByID(_ context.Context, requestID string) (*helprequest.HelpRequest, error) {
	req, ok := r.tx.st.requests[requestID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "help request "+requestID, nil)
	}
	return cloneHelpRequest(req), nil
}

// FindByIDForUpdate needs no row lock: the unit of work already holds the store mutex.
func (r *helpRequestRepo) FindByIDForUpdate(ctx context.Context, requestID string) (*helprequest.HelpRequest, error) {
	return r.FindByID(ctx, requestID)
}

func (r *helpRequestRepo) Update(_ context.Context, req *helprequest.HelpRequest, from helprequest.Status) error {
	if err := r.tx.writable("update help request"); err != nil {
		return err
	}
	stored, ok := r.tx.st.requests[req.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "help request "+req.ID(), nil)
	}
	if stored.Status() != from {
		return infra.NewRepoErr(infra.KindConflict, "help request "+req.ID()+" is no longer "+from.String(), nil)
	}
	r.tx.st.requests[req.ID()] = cloneHelpRequest(req)
	return nil
}

func (r *helpRequestRepo) DeleteOpen(_ context.Context, requestID string) error {
	if err := r.tx.writable("withdraw help request"); err != nil {
		return err
	}
	stored, ok := r.tx.st.requests[requestID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "help request "+requestID, nil)
	}
	if stored.Status() != helprequest.StatusOpen {
		return infra.NewRepoErr(infra.KindConflict, "help request "+requestID+" is no longer open", nil)
	}
	delete(r.tx.st.requests, requestID)
	return nil
}

func (r *helpRequestRepo) ListOpen(_ context.Context, now time.Time) ([]*helprequest.HelpRequest, error) {
	out := make([]*helprequest.HelpRequest, 0)
	for _, req := range r.tx.st.requests {
		if req.Status() == helprequest.StatusOpen && !req.IsExpired(now) {
			out = append(out, cloneHelpRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgency().Rank() != out[j].Urgency().Rank() {
			return out[i].Urgency().Rank() > out[j].Urgency().Rank()
		}
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (r *helpRequestRepo) ListByStudent(_ context.Context, studentID string) ([]*helprequest.HelpRequest, error) {
	out := make([]*helprequest.HelpRequest, 0)
	for _, req := range r.tx.st.requests {
		if req.StudentID() == studentID {
			out = append(out, cloneHelpRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().After(out[j].CreatedAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}
