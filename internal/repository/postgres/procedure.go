package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
)

func (r *procedureRepository) InsertIfAbsent(ctx context.Context, proc *model.ProcedureType) (bool, error) {
	query := `
		INSERT INTO procedure_types (name, category, default_duration_min, checklist, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		proc.Name,
		proc.Category,
		proc.DefaultDurationMin,
		proc.Checklist,
		proc.Active,
	).Scan(&proc.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// Name already present; the existing row keeps its data.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert procedure type: %w", err)
	}
	return true, nil
}

func (r *procedureRepository) ListActive(ctx context.Context) ([]model.ProcedureType, error) {
	query := `
		SELECT id, name, category, default_duration_min, checklist, active, created_at
		FROM procedure_types
		WHERE active = TRUE
		ORDER BY name ASC
	`
	var procs []model.ProcedureType
	if err := r.db.SelectContext(ctx, &procs, query); err != nil {
		return nil, fmt.Errorf("failed to list procedure types: %w", err)
	}
	return procs, nil
}

func (r *procedureRepository) GetByName(ctx context.Context, name string) (*model.ProcedureType, error) {
	query := `
		SELECT id, name, category, default_duration_min, checklist, active, created_at
		FROM procedure_types
		WHERE name = $1
	`
	var proc model.ProcedureType
	err := r.db.GetContext(ctx, &proc, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get procedure type: %w", err)
	}
	return &proc, nil
}

func (r *procedureRepository) GetByID(ctx context.Context, id int64) (*model.ProcedureType, error) {
	query := `
		SELECT id, name, category, default_duration_min, checklist, active, created_at
		FROM procedure_types
		WHERE id = $1
	`
	var proc model.ProcedureType
	err := r.db.GetContext(ctx, &proc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get procedure type: %w", err)
	}
	return &proc, nil
}
