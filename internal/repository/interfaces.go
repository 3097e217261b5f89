package repository

import (
	"context"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
)

type ProcedureRepository interface {
	// InsertIfAbsent inserts a catalog row unless one with the same name
	// exists; it reports whether a row was actually inserted.
	InsertIfAbsent(ctx context.Context, proc *model.ProcedureType) (bool, error)
	ListActive(ctx context.Context) ([]model.ProcedureType, error)
	GetByName(ctx context.Context, name string) (*model.ProcedureType, error)
	GetByID(ctx context.Context, id int64) (*model.ProcedureType, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, apt *model.Appointment) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	Update(ctx context.Context, apt *model.Appointment) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListForDay(ctx context.Context, day string) ([]*model.Appointment, error)
	SearchByPatient(ctx context.Context, fragment string) ([]*model.Appointment, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
