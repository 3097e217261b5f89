package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
)

const appointmentColumns = `
	id, patient_name, patient_tc, procedure_type_id, custom_proc_name,
	duration_min, scheduled_day, anticoagulant, antiplatelet, anesthesia_used,
	med_note, lab_notes, prep_notes, checklist_state, created_by,
	created_at, updated_at
`

func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			patient_name, patient_tc, procedure_type_id, custom_proc_name,
			duration_min, scheduled_day, anticoagulant, antiplatelet,
			anesthesia_used, med_note, lab_notes, prep_notes,
			checklist_state, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		apt.PatientName,
		apt.PatientTC,
		apt.ProcedureTypeID,
		apt.CustomProcName,
		apt.DurationMin,
		apt.ScheduledDay,
		apt.Anticoagulant,
		apt.Antiplatelet,
		apt.AnesthesiaUsed,
		apt.MedicalNote,
		apt.LabNotes,
		apt.PrepNotes,
		apt.ChecklistState,
		apt.CreatedBy,
		apt.CreatedAt,
		apt.UpdatedAt,
	).Scan(&apt.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) Update(ctx context.Context, apt *model.Appointment) (bool, error) {
	query := `
		UPDATE appointments
		SET patient_name = $1, patient_tc = $2, procedure_type_id = $3,
			custom_proc_name = $4, duration_min = $5, scheduled_day = $6,
			anticoagulant = $7, antiplatelet = $8, anesthesia_used = $9,
			med_note = $10, lab_notes = $11, prep_notes = $12,
			checklist_state = $13, updated_at = $14
		WHERE id = $15
	`
	apt.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		apt.PatientName,
		apt.PatientTC,
		apt.ProcedureTypeID,
		apt.CustomProcName,
		apt.DurationMin,
		apt.ScheduledDay,
		apt.Anticoagulant,
		apt.Antiplatelet,
		apt.AnesthesiaUsed,
		apt.MedicalNote,
		apt.LabNotes,
		apt.PrepNotes,
		apt.ChecklistState,
		apt.UpdatedAt,
		apt.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM appointments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *appointmentRepository) ListForDay(ctx context.Context, day string) ([]*model.Appointment, error) {
	// Newest first; ids are assigned in insertion order.
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE scheduled_day = $1
		ORDER BY id DESC
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, day); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) SearchByPatient(ctx context.Context, fragment string) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE patient_name ILIKE '%' || $1 || '%'
		   OR patient_tc ILIKE '%' || $1 || '%'
		ORDER BY scheduled_day DESC, id DESC
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, fragment); err != nil {
		return nil, fmt.Errorf("failed to search appointments: %w", err)
	}
	return appointments, nil
}
