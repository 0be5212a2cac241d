package repository

import (
	"context"
	"log/slog"
	"time"

	"peer-tutor-scheduler/internal/domain/helprequest"
	"peer-tutor-scheduler/internal/infra"
	"peer-tutor-scheduler/internal/infra/db"
	"peer-tutor-scheduler/internal/infra/repository/converter"
	"peer-tutor-scheduler/internal/pkg/pgconv"
)

const (
	insertHelpRequestSQL = `INSERT INTO help_requests (` + converter.HelpRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	findHelpRequestSQL          = `SELECT ` + converter.HelpRequestColumns + ` FROM help_requests WHERE request_id = $1`
	findHelpRequestForUpdateSQL = findHelpRequestSQL + ` FOR UPDATE`
	updateHelpRequestSQL        = `UPDATE help_requests
		SET status = $2, claimed_by = $3, booking_id = $4, claimed_at = $5, resolved_by = $6, resolved_at = $7
		WHERE request_id = $1 AND status = $8`
	listOpenHelpRequestsSQL = `SELECT ` + converter.HelpRequestColumns + ` FROM help_requests
		WHERE status = 'open' AND expires_at >= $1
		ORDER BY CASE urgency WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, created_at, request_id`
	listHelpRequestsByStudentSQL = `SELECT ` + converter.HelpRequestColumns + ` FROM help_requests
		WHERE student_id = $1 ORDER BY created_at DESC, request_id`
	deleteOpenHelpRequestSQL = `DELETE FROM help_requests WHERE request_id = $1 AND status = 'open'`
)

type HelpRequestRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewHelpRequestRepository(dbtx db.DBTX, logger *slog.Logger) *HelpRequestRepository {
	return &HelpRequestRepository{db: dbtx, logger: logger}
}

func (r *HelpRequestRepository) Create(ctx context.Context, req *helprequest.HelpRequest) error {
	if _, err := r.db.Exec(ctx, insertHelpRequestSQL, converter.HelpRequestToInfra(req)...); err != nil {
		return infra.FromDBError(r.logger, "failed to create help request", err)
	}
	return nil
}

func (r *HelpRequestRepository) FindByID(ctx context.Context, requestID string) (*helprequest.HelpRequest, error) {
	return r.findOne(ctx, findHelpRequestSQL, requestID)
}

func (r *HelpRequestRepository) FindByIDForUpdate(ctx context.Context, requestID string) (*helprequest.HelpRequest, error) {
	return r.findOne(ctx, findHelpRequestForUpdateSQL, requestID)
}

func (r *HelpRequestRepository) findOne(ctx context.Context, query, requestID string) (*helprequest.HelpRequest, error) {
	var row converter.HelpRequestRow
	if err := r.db.QueryRow(ctx, query, requestID).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.FromDBError(r.logger, "help request "+requestID, err)
	}
	return converter.HelpRequestToDomain(row), nil
}

func (r *HelpRequestRepository) Update(ctx context.Context, req *helprequest.HelpRequest, from helprequest.Status) error {
	tag, err := r.db.Exec(ctx, updateHelpRequestSQL,
		req.ID(),
		req.Status().String(),
		pgconv.StringPtrToPgtype(req.ClaimedByPtr()),
		pgconv.NullableString(req.BookingID()),
		pgconv.TimePtrToPgtype(req.ClaimedAt()),
		pgconv.StringPtrToPgtype(req.ResolvedByPtr()),
		pgconv.TimePtrToPgtype(req.ResolvedAt()),
		from.String(),
	)
	if err != nil {
		return infra.FromDBError(r.logger, "failed to update help request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "help request "+req.ID()+" is no longer "+from.String(), nil)
	}
	return nil
}

func (r *HelpRequestRepository) DeleteOpen(ctx context.Context, requestID string) error {
	tag, err := r.db.Exec(ctx, deleteOpenHelpRequestSQL, requestID)
	if err != nil {
		return infra.FromDBError(r.logger, "failed to withdraw help request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "help request "+requestID+" is no longer open", nil)
	}
	return nil
}

func (r *HelpRequestRepository) ListOpen(ctx context.Context, now time.Time) ([]*helprequest.HelpRequest, error) {
	return r.list(ctx, listOpenHelpRequestsSQL, pgconv.TimeToPgtype(now))
}

func (r *HelpRequestRepository) ListByStudent(ctx context.Context, studentID string) ([]*helprequest.HelpRequest, error) {
	return r.list(ctx, listHelpRequestsByStudentSQL, studentID)
}

func (r *HelpRequestRepository) list(ctx context.Context, query string, arg any) ([]*helprequest.HelpRequest, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.FromDBError(r.logger, "failed to list help requests", err)
	}
	defer rows.Close()

	out := make([]*helprequest.HelpRequest, 0)
	for rows.Next() {
		var row converter.HelpRequestRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.FromDBError(r.logger, "failed to scan help request", err)
		}
		out = append(out, converter.HelpRequestToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.FromDBError(r.logger, "failed to iterate help requests", err)
	}
	return out, nil
}
