package service

import (
	"context"
	"fmt"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

type Patient struct {
	store  model.PatientStore
	logger *logger.Logger
}

func NewPatient(store model.PatientStore, logger *logger.Logger) *Patient {
	return &Patient{store: store, logger: logger}
}

func (s *Patient) List(_ context.Context) []model.Patient {
	return s.store.List()
}

func (s *Patient) Get(_ context.Context, id string) (model.Patient, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to get patient %s: %w", id, err)
	}
	return p, nil
}

func (s *Patient) Add(ctx context.Context, patient model.Patient) (model.Patient, error) {
	if err := required("name", patient.Name); err != nil {
		return model.Patient{}, err
	}

	p, err := s.store.Add(ctx, patient)
	if err != nil {
		s.logger.Error("Patient service: failed to add patient", "error", err.Error())
		return model.Patient{}, fmt.Errorf("failed to add patient: %w", err)
	}

	s.logger.Info("Patient service: patient added", "patient_id", p.ID)
	return p, nil
}

func (s *Patient) Update(ctx context.Context, id string, patch model.PatientPatch) (model.Patient, error) {
	if patch.Name != nil {
		if err := required("name", *patch.Name); err != nil {
			return model.Patient{}, err
		}
	}

	p, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to update patient %s: %w", id, err)
	}

	s.logger.Info("Patient service: patient updated", "patient_id", id)
	return p, nil
}

// Delete removes the patient. Appointments and messages that reference the
// patient are kept.
func (s *Patient) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient %s: %w", id, err)
	}

	s.logger.Info("Patient service: patient deleted", "patient_id", id)
	return nil
}
