package memstore

import (
	"context"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
)

const (
	retiredReplaced = "replaced"
	retiredDeleted  = "deleted"
	retiredConsumed = "consumed"
)

type slotRepo struct {
	tx *memTx
}

func (r *slotRepo) retire(slotID, reason string) {
	delete(r.tx.st.slots, slotID)
	r.tx.st.retired[slotID] = reason
}

func (r *slotRepo) ReplaceForTutor(_ context.Context, tutorID string, slots []*slot.Slot) error {
	if err := r.tx.writable("replace slots"); err != nil {
		return err
	}
	st := r.tx.st
	for id, s := range st.slots {
		if s.TutorID() == tutorID {
			r.retire(id, retiredReplaced)
		}
	}
	for _, s := range slots {
		if _, exists := st.slots[s.ID()]; exists {
			return infra.NewRepoErr(infra.KindDuplicateKey, "slot id "+s.ID(), nil)
		}
		for _, live := range st.slots {
			if live.TutorID() == s.TutorID() && live.Date() == s.Date() && live.StartTime() == s.StartTime() {
				return infra.NewRepoErr(infra.KindDuplicateKey, "slot start "+s.Date().String()+" "+s.StartTime().String(), nil)
			}
		}
		delete(st.retired, s.ID())
		st.slots[s.ID()] = cloneSlot(s)
	}
	return nil
}

func (r *slotRepo) ListByTutor(_ context.Context, tutorID string) ([]*slot.Slot, error) {
	out := make([]*slot.Slot, 0)
	for _, s := range r.tx.st.slots {
		if s.TutorID() == tutorID {
			out = append(out, cloneSlot(s))
		}
	}
	slot.SortByStart(out)
	return out, nil
}

func (r *slotRepo) FindByID(_ context.Context, slotID string) (*slot.Slot, error) {
	s, ok := r.tx.st.slots[slotID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot "+slotID, nil)
	}
	return cloneSlot(s), nil
}

func (r *slotRepo) ConsumeIfAvailable(_ context.Context, slotID, tutorID string) (*slot.Slot, error) {
	if err := r.tx.writable("consume slot"); err != nil {
		return nil, err
	}
	s, ok := r.tx.st.slots[slotID]
	if !ok {
		if reason, retired := r.tx.st.retired[slotID]; retired {
			return nil, infra.NewRepoErr(infra.KindConflict, "slot "+slotID+" was "+reason, nil)
		}
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot "+slotID, nil)
	}
	if (tutorID != "" && s.TutorID() != tutorID) || !s.Bookable() {
		return nil, infra.NewRepoErr(infra.KindConflict, "slot "+slotID+" is not available", nil)
	}
	r.retire(slotID, retiredConsumed)
	return cloneSlot(s), nil
}

func (r *slotRepo) Delete(_ context.Context, slotID, tutorID string) error {
	if err := r.tx.writable("delete slot"); err != nil {
		return err
	}
	s, ok := r.tx.st.slots[slotID]
	if !ok || s.TutorID() != tutorID {
		return infra.NewRepoErr(infra.KindNotFound, "slot "+slotID, nil)
	}
	r.retire(slotID, retiredDeleted)
	return nil
}
