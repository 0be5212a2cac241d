package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookingsTable, downCreateBookingsTable)
}

func upCreateBookingsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
		CREATE TABLE bookings (
			booking_id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL,
			tutor_id TEXT NOT NULL,
			subject TEXT NOT NULL,
			specific_topic TEXT NOT NULL DEFAULT '',
			scheduled_at TIMESTAMP WITH TIME ZONE NOT NULL,
			duration_minutes INT NOT NULL CHECK (duration_minutes > 0),
			format TEXT NOT NULL CHECK (format IN ('Online', 'InPerson')),
			location TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
			additional_notes TEXT NOT NULL DEFAULT '',
			slot_id TEXT,
			linked_request_id TEXT,
			confirmed_at TIMESTAMP WITH TIME ZONE,
			completed_at TIMESTAMP WITH TIME ZONE,
			cancelled_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			CONSTRAINT bookings_distinct_participants CHECK (student_id <> tutor_id)
		);

		CREATE INDEX idx_bookings_student ON bookings (student_id, scheduled_at);
		CREATE INDEX idx_bookings_tutor ON bookings (tutor_id, scheduled_at);
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateBookingsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS bookings;`)
	return err
}
