package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Re-runnable on every startup: all statements are IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'technician',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS procedure_types (
	id                   BIGSERIAL PRIMARY KEY,
	name                 TEXT UNIQUE NOT NULL,
	category             TEXT NOT NULL,
	default_duration_min INTEGER NOT NULL,
	checklist            JSONB NOT NULL DEFAULT '[]',
	active               BOOLEAN NOT NULL DEFAULT TRUE,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS appointments (
	id                BIGSERIAL PRIMARY KEY,
	patient_name      TEXT NOT NULL,
	patient_tc        TEXT NOT NULL DEFAULT '',
	procedure_type_id BIGINT REFERENCES procedure_types(id),
	custom_proc_name  TEXT,
	duration_min      INTEGER NOT NULL,
	scheduled_day     TEXT NOT NULL,
	anticoagulant     BOOLEAN NOT NULL DEFAULT FALSE,
	antiplatelet      BOOLEAN NOT NULL DEFAULT FALSE,
	anesthesia_used   BOOLEAN NOT NULL DEFAULT FALSE,
	med_note          TEXT NOT NULL DEFAULT '',
	lab_notes         TEXT NOT NULL DEFAULT '',
	prep_notes        TEXT NOT NULL DEFAULT '',
	checklist_state   JSONB NOT NULL DEFAULT '{}',
	created_by        TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_appointments_day ON appointments (scheduled_day);
CREATE INDEX IF NOT EXISTS idx_appointments_tc ON appointments (patient_tc);
`

// Migrate applies the schema. Safe to call on every process start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
