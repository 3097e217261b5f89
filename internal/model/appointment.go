package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ISO calendar-date layout used for scheduled days. The day is a label,
// not an instant: no timezone normalization is ever applied.
const DayLayout = "2006-01-02"

// ChecklistState is the per-appointment snapshot of which preparation items
// were confirmed at creation/edit time. It is captured from the catalog's
// checklist when the appointment is written and never re-joined against the
// catalog, so later catalog edits do not alter historical records.
type ChecklistState map[string]bool

func (s ChecklistState) Value() (driver.Value, error) {
	if s == nil {
		s = ChecklistState{}
	}
	return json.Marshal(s)
}

func (s *ChecklistState) Scan(src interface{}) error {
	if src == nil {
		*s = ChecklistState{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported checklist state column type %T", src)
	}
	return json.Unmarshal(b, s)
}

// ProcedureReference is a tagged variant: an appointment points either at a
// catalog entry or at an operator-supplied free-text name, never both.
type ProcedureReference struct {
	catalogID  int64
	customName string
}

// CatalogProcedure references a catalog entry by id.
func CatalogProcedure(id int64) ProcedureReference {
	return ProcedureReference{catalogID: id}
}

// CustomProcedure references a free-text procedure name.
func CustomProcedure(name string) ProcedureReference {
	return ProcedureReference{customName: name}
}

// CatalogID returns the referenced catalog id, if this is a catalog reference.
func (r ProcedureReference) CatalogID() (int64, bool) {
	return r.catalogID, r.catalogID != 0
}

// CustomName returns the free-text name, if this is a custom reference.
func (r ProcedureReference) CustomName() (string, bool) {
	return r.customName, r.catalogID == 0 && r.customName != ""
}

func (r ProcedureReference) IsZero() bool {
	return r.catalogID == 0 && r.customName == ""
}

// Appointment is one scheduled procedure instance. Day-bucketed: the
// scheduled day is the sole retrieval key for the day view.
type Appointment struct {
	ID              int64          `db:"id" json:"id"`
	PatientName     string         `db:"patient_name" json:"patient_name"`
	PatientTC       string         `db:"patient_tc" json:"patient_tc,omitempty"`
	ProcedureTypeID *int64         `db:"procedure_type_id" json:"procedure_type_id,omitempty"`
	CustomProcName  *string        `db:"custom_proc_name" json:"custom_proc_name,omitempty"`
	DurationMin     int            `db:"duration_min" json:"duration_min"`
	ScheduledDay    string         `db:"scheduled_day" json:"scheduled_day"`
	Anticoagulant   bool           `db:"anticoagulant" json:"anticoagulant"`
	Antiplatelet    bool           `db:"antiplatelet" json:"antiplatelet"`
	AnesthesiaUsed  bool           `db:"anesthesia_used" json:"anesthesia_used"`
	MedicalNote     string         `db:"med_note" json:"med_note,omitempty"`
	LabNotes        string         `db:"lab_notes" json:"lab_notes,omitempty"`
	PrepNotes       string         `db:"prep_notes" json:"prep_notes,omitempty"`
	ChecklistState  ChecklistState `db:"checklist_state" json:"checklist_state"`
	CreatedBy       string         `db:"created_by" json:"created_by"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// ProcedureRef reconstructs the tagged reference from the stored columns.
func (a *Appointment) ProcedureRef() ProcedureReference {
	if a.ProcedureTypeID != nil {
		return CatalogProcedure(*a.ProcedureTypeID)
	}
	if a.CustomProcName != nil {
		return CustomProcedure(*a.CustomProcName)
	}
	return ProcedureReference{}
}

// CreateAppointmentRequest carries the decoded scheduling submission.
// CheckedItems lists the checklist item texts the submitter marked complete;
// items not in the resolved procedure's checklist are ignored.
type CreateAppointmentRequest struct {
	PatientName     string   `json:"patient_name"`
	PatientTC       string   `json:"patient_tc"`
	ProcedureTypeID *int64   `json:"procedure_type_id"`
	CustomProcName  string   `json:"custom_proc_name"`
	DurationMin     *int     `json:"duration_min"`
	ScheduledDay    string   `json:"scheduled_day"`
	Anticoagulant   bool     `json:"anticoagulant"`
	Antiplatelet    bool     `json:"antiplatelet"`
	AnesthesiaUsed  bool     `json:"anesthesia_used"`
	MedicalNote     string   `json:"med_note"`
	LabNotes        string   `json:"lab_notes"`
	PrepNotes       string   `json:"prep_notes"`
	CheckedItems    []string `json:"checked_items"`
}

// DaySchedule is the day view: the day's appointments newest-first plus the
// summed workload in minutes.
type DaySchedule struct {
	Day              string         `json:"day"`
	Appointments     []*Appointment `json:"appointments"`
	TotalDurationMin int            `json:"total_duration_minutes"`
}
