package repository

import (
	"context"
	"log/slog"

	"peer-tutor-scheduler/internal/domain/slot"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/infra/repository/converter"
	"peer-tutor-scheduler/internal/pkg/pgconv"
)

// retireSQL wraps a DELETE ... RETURNING slot_id, tutor_id statement and
// records the removed ids in retired_slots with the reason bound to $R.
func retireSQL(deleteSQL, reasonParam string) string {
	return `WITH gone AS (` + deleteSQL + `)
		INSERT INTO retired_slots (slot_id, tutor_id, reason)
		SELECT slot_id, tutor_id, ` + reasonParam + ` FROM gone
		ON CONFLICT (slot_id) DO UPDATE SET reason = EXCLUDED.reason, retired_at = now()`
}

var (
	deleteTutorSlotsSQL = retireSQL(`DELETE FROM availability_slots WHERE tutor_id = $1
		RETURNING slot_id, tutor_id`, `'replaced'`)
	deleteSlotSQL = retireSQL(`DELETE FROM availability_slots WHERE slot_id = $1 AND tutor_id = $2
		RETURNING slot_id, tutor_id`, `'deleted'`)
)

const (
	insertSlotSQL       = `INSERT INTO availability_slots (` + converter.SlotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	listSlotsByTutorSQL = `SELECT ` + converter.SlotColumns + ` FROM availability_slots
		WHERE tutor_id = $1 ORDER BY slot_date, start_time`
	findSlotSQL    = `SELECT ` + converter.SlotColumns + ` FROM availability_slots WHERE slot_id = $1`
	consumeSlotSQL = `WITH gone AS (
			DELETE FROM availability_slots
			WHERE slot_id = $1 AND ($2 = '' OR tutor_id = $2) AND NOT is_blocked
			RETURNING ` + converter.SlotColumns + `
		), retired AS (
			INSERT INTO retired_slots (slot_id, tutor_id, reason)
			SELECT slot_id, tutor_id, 'consumed' FROM gone
			ON CONFLICT (slot_id) DO UPDATE SET reason = EXCLUDED.reason, retired_at = now()
		)
		SELECT ` + converter.SlotColumns + ` FROM gone`
	slotIssuedSQL = `SELECT EXISTS (SELECT 1 FROM availability_slots WHERE slot_id = $1)
		OR EXISTS (SELECT 1 FROM retired_slots WHERE slot_id = $1)`
)

type SlotRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSlotRepository(dbtx db.DBTX, logger *slog.Logger) *SlotRepository {
	return &SlotRepository{db: dbtx, logger: logger}
}

func (r *SlotRepository) ReplaceForTutor(ctx context.Context, tutorID string, slots []*slot.Slot) error {
	if _, err := r.db.Exec(ctx, deleteTutorSlotsSQL, tutorID); err != nil {
		return infra.FromDBError(r.logger, "failed to clear tutor slots", err)
	}
	for _, s := range slots {
		if _, err := r.db.Exec(ctx, insertSlotSQL, converter.SlotToInfra(s)...); err != nil {
			return infra.FromDBError(r.logger, "failed to insert slot", err)
		}
	}
	return nil
}

func (r *SlotRepository) ListByTutor(ctx context.Context, tutorID string) ([]*slot.Slot, error) {
	rows, err := r.db.Query(ctx, listSlotsByTutorSQL, tutorID)
	if err != nil {
		return nil, infra.FromDBError(r.logger, "failed to list slots", err)
	}
	defer rows.Close()

	out := make([]*slot.Slot, 0)
	for rows.Next() {
		var row converter.SlotRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.FromDBError(r.logger, "failed to scan slot", err)
		}
		out = append(out, converter.SlotToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.FromDBError(r.logger, "failed to iterate slots", err)
	}
	return out, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, slotID string) (*slot.Slot, error) {
	var row converter.SlotRow
	if err := r.db.QueryRow(ctx, findSlotSQL, slotID).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.FromDBError(r.logger, "slot "+slotID, err)
	}
	return converter.SlotToDomain(row), nil
}

func (r *SlotRepository) ConsumeIfAvailable(ctx context.Context, slotID, tutorID string) (*slot.Slot, error) {
	var row converter.SlotRow
	err := r.db.QueryRow(ctx, consumeSlotSQL, slotID, tutorID).Scan(row.ScanTargets()...)
	if pgconv.IsNoRows(err) {
		var issued bool
		if qerr := r.db.QueryRow(ctx, slotIssuedSQL, slotID).Scan(&issued); qerr != nil {
			return nil, infra.FromDBError(r.logger, "failed to look up slot", qerr)
		}
		if !issued {
			return nil, infra.NewRepoErr(infra.KindNotFound, "slot "+slotID, err)
		}
		return nil, infra.NewRepoErr(infra.KindConflict, "slot "+slotID+" is not available", err)
	}
	if err != nil {
		return nil, infra.FromDBError(r.logger, "failed to consume slot", err)
	}
	return converter.SlotToDomain(row), nil
}

func (r *SlotRepository) Delete(ctx context.Context, slotID, tutorID string) error {
	tag, err := r.db.Exec(ctx, deleteSlotSQL, slotID, tutorID)
	if err != nil {
		return infra.FromDBError(r.logger, "failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot "+slotID, nil)
	}
	return nil
}
