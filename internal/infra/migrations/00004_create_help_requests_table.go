package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateHelpRequestsTable, downCreateHelpRequestsTable)
}

func upCreateHelpRequestsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
		CREATE TABLE help_requests (
			request_id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL,
			subject TEXT NOT NULL,
			topic TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			urgency TEXT NOT NULL CHECK (urgency IN ('low', 'medium', 'high')),
			preferred_format TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL CHECK (status IN ('open', 'claimed', 'resolved')),
			claimed_by TEXT,
			booking_id TEXT REFERENCES bookings (booking_id),
			claimed_at TIMESTAMP WITH TIME ZONE,
			resolved_by TEXT,
			resolved_at TIMESTAMP WITH TIME ZONE,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			CONSTRAINT help_requests_claimed_by CHECK ((status = 'open') = (claimed_by IS NULL)),
			CONSTRAINT help_requests_resolved_by CHECK ((status = 'resolved') = (resolved_by IS NOT NULL))
		);

		CREATE INDEX idx_help_requests_open ON help_requests (status, expires_at);
		CREATE INDEX idx_help_requests_student ON help_requests (student_id, created_at);
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateHelpRequestsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS help_requests;`)
	return err
}
