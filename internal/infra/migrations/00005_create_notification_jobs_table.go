package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateNotificationJobsTable, downCreateNotificationJobsTable)
}

func upCreateNotificationJobsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
		CREATE TABLE notification_jobs (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			topic TEXT NOT NULL,
			user_id TEXT NOT NULL,
			payload JSONB NOT NULL,
			status TEXT NOT NULL DEFAULT 'queued' CHECK (status IN ('queued', 'sent', 'failed')),
			attempts INT NOT NULL DEFAULT 0,
			last_error TEXT,
			run_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		);

		CREATE INDEX idx_notification_jobs_queue ON notification_jobs (status, run_at);
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateNotificationJobsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS notification_jobs;`)
	return err
}
