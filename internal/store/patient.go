package store

import (
	"context"
	"time"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.PatientStore = (*PatientStore)(nil)

type PatientStore struct {
	c *collection[model.Patient]
}

func NewPatientStore(ctx context.Context, medium model.Medium, opts ...Option) (*PatientStore, error) {
	c, err := loadCollection[model.Patient](ctx, medium, model.KeyPatients, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &PatientStore{c: c}, nil
}

func (s *PatientStore) List() []model.Patient {
	return s.c.list()
}

func (s *PatientStore) Get(id string) (model.Patient, error) {
	return s.c.get(id)
}

func (s *PatientStore) Add(ctx context.Context, patient model.Patient) (model.Patient, error) {
	return s.c.add(ctx, patient, func(p *model.Patient, id string, now time.Time) {
		p.ID = id
		p.CreatedAt = now
	})
}

func (s *PatientStore) Update(ctx context.Context, id string, patch model.PatientPatch) (model.Patient, error) {
	return s.c.update(ctx, id, func(p *model.Patient) error {
		patch.Apply(p)
		return nil
	})
}

func (s *PatientStore) Delete(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}
