package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateAvailabilitySlotsTable, downCreateAvailabilitySlotsTable)
}

func upCreateAvailabilitySlotsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
		CREATE TABLE availability_slots (
			slot_id TEXT PRIMARY KEY,
			tutor_id TEXT NOT NULL,
			slot_date DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			format TEXT NOT NULL CHECK (format IN ('Online', 'InPerson')),
			location TEXT NOT NULL DEFAULT '',
			is_recurring BOOLEAN NOT NULL DEFAULT false,
			is_blocked BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			CONSTRAINT availability_slots_time_range CHECK (start_time < end_time),
			CONSTRAINT availability_slots_location CHECK (format <> 'InPerson' OR location <> ''),
			CONSTRAINT availability_slots_unique_start UNIQUE (tutor_id, slot_date, start_time)
		);
	`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return err
	}

	retired := `
		CREATE TABLE retired_slots (
			slot_id TEXT PRIMARY KEY,
			tutor_id TEXT NOT NULL,
			reason TEXT NOT NULL CHECK (reason IN ('replaced', 'deleted', 'consumed')),
			retired_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		);
	`
	_, err := tx.ExecContext(ctx, retired)
	return err
}

func downCreateAvailabilitySlotsTable(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS retired_slots;`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS availability_slots;`)
	return err
}
