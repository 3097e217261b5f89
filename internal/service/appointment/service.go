package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	"github.com/hkaraoglu/ir-scheduler/internal/repository"
	"github.com/hkaraoglu/ir-scheduler/internal/service/catalog"
	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
)

// Service creates, edits and queries scheduled procedures. All writes are
// single-row; two concurrent edits of the same appointment are
// last-write-wins.
type Service struct {
	repo               repository.AppointmentRepository
	catalogSvc         *catalog.Service
	defaultDurationMin int
}

func NewService(repo repository.AppointmentRepository, catalogSvc *catalog.Service, defaultDurationMin int) *Service {
	if defaultDurationMin <= 0 {
		defaultDurationMin = 30
	}
	return &Service{
		repo:               repo,
		catalogSvc:         catalogSvc,
		defaultDurationMin: defaultDurationMin,
	}
}

// resolved carries the validated, catalog-resolved form of a request.
type resolved struct {
	patientName string
	ref         model.ProcedureReference
	durationMin int
	day         string
	checklist   model.Checklist
}

// columns splits the tagged reference back into the two nullable columns.
func (r *resolved) columns() (procID *int64, procName *string) {
	if id, ok := r.ref.CatalogID(); ok {
		procID = &id
	}
	if name, ok := r.ref.CustomName(); ok {
		procName = &name
	}
	return procID, procName
}

// resolve validates the request and resolves the procedure selection against
// the current catalog. Nothing is persisted when an error is returned.
func (s *Service) resolve(ctx context.Context, req *model.CreateAppointmentRequest) (*resolved, error) {
	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return nil, apperrors.Validation("patient_name", "patient name required")
	}

	day := strings.TrimSpace(req.ScheduledDay)
	if _, err := time.Parse(model.DayLayout, day); err != nil {
		return nil, apperrors.Validation("scheduled_day", "invalid date")
	}

	r := &resolved{
		patientName: name,
		day:         day,
		checklist:   model.Checklist{},
	}

	// Exactly one of catalog id / free-text name selects the procedure.
	switch {
	case req.ProcedureTypeID != nil:
		proc, err := s.catalogSvc.GetByID(ctx, *req.ProcedureTypeID)
		if err != nil {
			return nil, err
		}
		if proc == nil {
			return nil, apperrors.Validation("procedure_type_id", "unknown procedure")
		}
		r.ref = model.CatalogProcedure(proc.ID)
		r.durationMin = proc.DefaultDurationMin
		r.checklist = proc.Checklist
	case strings.TrimSpace(req.CustomProcName) != "":
		custom := strings.TrimSpace(req.CustomProcName)
		// A free-text name that happens to match a catalog entry still gets
		// the catalog defaults.
		proc, err := s.catalogSvc.Get(ctx, custom)
		if err != nil {
			return nil, err
		}
		if proc != nil {
			r.ref = model.CatalogProcedure(proc.ID)
			r.durationMin = proc.DefaultDurationMin
			r.checklist = proc.Checklist
		} else {
			r.ref = model.CustomProcedure(custom)
			r.durationMin = s.defaultDurationMin
		}
	default:
		return nil, apperrors.Validation("procedure", "procedure selection required")
	}

	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			return nil, apperrors.Validation("duration_min", "invalid duration")
		}
		r.durationMin = *req.DurationMin
	}

	return r, nil
}

// snapshotChecklist freezes the confirmation state of the resolved
// procedure's checklist. Submitted items outside the checklist are dropped.
func snapshotChecklist(checklist model.Checklist, checked []string) model.ChecklistState {
	checkedSet := make(map[string]struct{}, len(checked))
	for _, item := range checked {
		checkedSet[item] = struct{}{}
	}

	state := make(model.ChecklistState, len(checklist))
	for _, item := range checklist {
		_, ok := checkedSet[item]
		state[item] = ok
	}
	return state
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest, actor string) (*model.Appointment, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	procID, procName := r.columns()
	apt := &model.Appointment{
		PatientName:     r.patientName,
		PatientTC:       strings.TrimSpace(req.PatientTC),
		ProcedureTypeID: procID,
		CustomProcName:  procName,
		DurationMin:     r.durationMin,
		ScheduledDay:    r.day,
		Anticoagulant:   req.Anticoagulant,
		Antiplatelet:    req.Antiplatelet,
		AnesthesiaUsed:  req.AnesthesiaUsed,
		MedicalNote:     req.MedicalNote,
		LabNotes:        req.LabNotes,
		PrepNotes:       req.PrepNotes,
		ChecklistState:  snapshotChecklist(r.checklist, req.CheckedItems),
		CreatedBy:       actor,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, apperrors.Storage("create appointment", err)
	}
	return apt, nil
}

// Update replaces the appointment's fields and re-snapshots the checklist
// against the newly chosen procedure's current checklist. This is a
// deliberate re-snapshot, not a merge with the prior state.
func (s *Service) Update(ctx context.Context, id int64, req *model.CreateAppointmentRequest, actor string) (*model.Appointment, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("get appointment", err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("appointment", id)
	}

	procID, procName := r.columns()
	apt := &model.Appointment{
		ID:              id,
		PatientName:     r.patientName,
		PatientTC:       strings.TrimSpace(req.PatientTC),
		ProcedureTypeID: procID,
		CustomProcName:  procName,
		DurationMin:     r.durationMin,
		ScheduledDay:    r.day,
		Anticoagulant:   req.Anticoagulant,
		Antiplatelet:    req.Antiplatelet,
		AnesthesiaUsed:  req.AnesthesiaUsed,
		MedicalNote:     req.MedicalNote,
		LabNotes:        req.LabNotes,
		PrepNotes:       req.PrepNotes,
		ChecklistState:  snapshotChecklist(r.checklist, req.CheckedItems),
		CreatedBy:       existing.CreatedBy,
		CreatedAt:       existing.CreatedAt,
	}

	ok, err := s.repo.Update(ctx, apt)
	if err != nil {
		return nil, apperrors.Storage("update appointment", err)
	}
	if !ok {
		return nil, apperrors.NotFound("appointment", id)
	}
	return apt, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Storage("get appointment", err)
	}
	if apt == nil {
		return nil, apperrors.NotFound("appointment", id)
	}
	return apt, nil
}

// Delete removes the appointment if present. Deleting a missing id is a
// no-op that reports false.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, apperrors.Storage("delete appointment", err)
	}
	return deleted, nil
}

// ListForDay returns the day's appointments newest-first.
func (s *Service) ListForDay(ctx context.Context, day string) ([]*model.Appointment, error) {
	if _, err := time.Parse(model.DayLayout, day); err != nil {
		return nil, apperrors.Validation("day", "invalid date")
	}

	appointments, err := s.repo.ListForDay(ctx, day)
	if err != nil {
		return nil, apperrors.Storage("list appointments", err)
	}
	return appointments, nil
}

// SearchByPatient matches a case-insensitive substring against patient name
// and national id. An empty fragment yields an empty result: search is
// opt-in, not list-all.
func (s *Service) SearchByPatient(ctx context.Context, fragment string) ([]*model.Appointment, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []*model.Appointment{}, nil
	}

	appointments, err := s.repo.SearchByPatient(ctx, fragment)
	if err != nil {
		return nil, apperrors.Storage("search appointments", err)
	}
	return appointments, nil
}

// TotalDurationForDay sums the day's workload in minutes; zero for an empty
// day.
func (s *Service) TotalDurationForDay(ctx context.Context, day string) (int, error) {
	appointments, err := s.ListForDay(ctx, day)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, apt := range appointments {
		total += apt.DurationMin
	}
	return total, nil
}

// DaySchedule bundles the day view with its total workload.
func (s *Service) DaySchedule(ctx context.Context, day string) (*model.DaySchedule, error) {
	appointments, err := s.ListForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, apt := range appointments {
		total += apt.DurationMin
	}

	return &model.DaySchedule{
		Day:              day,
		Appointments:     appointments,
		TotalDurationMin: total,
	}, nil
}
