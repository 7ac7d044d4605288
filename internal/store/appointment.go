package store

import (
	"context"
	"time"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.AppointmentStore = (*AppointmentStore)(nil)

type AppointmentStore struct {
	c *collection[model.Appointment]
}

func NewAppointmentStore(ctx context.Context, medium model.Medium, opts ...Option) (*AppointmentStore, error) {
	c, err := loadCollection[model.Appointment](ctx, medium, model.KeyAppointments, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &AppointmentStore{c: c}, nil
}

func (s *AppointmentStore) List() []model.Appointment {
	return s.c.list()
}

func (s *AppointmentStore) Get(id string) (model.Appointment, error) {
	return s.c.get(id)
}

// Add stores a new appointment. Status defaults to scheduled.
func (s *AppointmentStore) Add(ctx context.Context, appointment model.Appointment) (model.Appointment, error) {
	return s.c.add(ctx, appointment, func(a *model.Appointment, id string, now time.Time) {
		a.ID = id
		a.CreatedAt = now
		if a.Status == "" {
			a.Status = model.AppointmentScheduled
		}
	})
}

func (s *AppointmentStore) Update(ctx context.Context, id string, patch model.AppointmentPatch) (model.Appointment, error) {
	return s.c.update(ctx, id, func(a *model.Appointment) error {
		patch.Apply(a)
		return nil
	})
}

func (s *AppointmentStore) Delete(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}
