package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ProcedureCategory groups catalog entries for the selection UI. It carries
// no scheduling semantics.
type ProcedureCategory string

const (
	CategoryFluoroscopy    ProcedureCategory = "fluoroscopy"
	CategoryNonFluoroscopy ProcedureCategory = "non_fluoroscopy"
)

// Checklist is the ordered list of preparation steps a clinician must
// acknowledge before a procedure. Stored as a JSON column.
type Checklist []string

func (c Checklist) Value() (driver.Value, error) {
	if c == nil {
		c = Checklist{}
	}
	return json.Marshal(c)
}

func (c *Checklist) Scan(src interface{}) error {
	if src == nil {
		*c = Checklist{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported checklist column type %T", src)
	}
	return json.Unmarshal(b, c)
}

// ProcedureType is a catalog entry. Rows are seeded once at startup and are
// read-only afterwards; inactive entries stay referenced by historical
// appointments but are excluded from new-appointment selection.
type ProcedureType struct {
	ID                 int64             `db:"id" json:"id"`
	Name               string            `db:"name" json:"name"`
	Category           ProcedureCategory `db:"category" json:"category"`
	DefaultDurationMin int               `db:"default_duration_min" json:"default_duration_min"`
	Checklist          Checklist         `db:"checklist" json:"checklist"`
	Active             bool              `db:"active" json:"active"`
	CreatedAt          time.Time         `db:"created_at" json:"created_at"`
}

// SeedProcedure is one catalog row of the startup seed.
type SeedProcedure struct {
	Name               string
	Category           ProcedureCategory
	DefaultDurationMin int
	Checklist          Checklist
}
