package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

type Appointment struct {
	store    model.AppointmentStore
	patients model.PatientStore
	logger   *logger.Logger
}

func NewAppointment(store model.AppointmentStore, patients model.PatientStore, logger *logger.Logger) *Appointment {
	return &Appointment{store: store, patients: patients, logger: logger}
}

func (s *Appointment) List(_ context.Context) []model.Appointment {
	return s.store.List()
}

// Schedule books an appointment for an existing patient. The patient's name
// is copied onto the appointment.
func (s *Appointment) Schedule(ctx context.Context, params model.ScheduleAppointmentParams) (model.Appointment, error) {
	if params.Type == "" {
		params.Type = model.AppointmentCheckup
	}
	if !params.Type.Valid() {
		return model.Appointment{}, invalid("type", fmt.Sprintf("%q is not a known appointment type", params.Type))
	}
	if err := required("date", params.Date); err != nil {
		return model.Appointment{}, err
	}
	if err := required("time", params.Time); err != nil {
		return model.Appointment{}, err
	}
	if err := validDate(params.Date); err != nil {
		return model.Appointment{}, err
	}
	if err := validTime(params.Time); err != nil {
		return model.Appointment{}, err
	}

	patient, err := s.lookupPatient(params.PatientID)
	if err != nil {
		return model.Appointment{}, err
	}

	a, err := s.store.Add(ctx, model.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Date:        params.Date,
		Time:        params.Time,
		Type:        params.Type,
		Status:      model.AppointmentScheduled,
		Notes:       params.Notes,
	})
	if err != nil {
		s.logger.Error("Appointment service: failed to schedule appointment",
			"patient_id", patient.ID,
			"error", err.Error())
		return model.Appointment{}, fmt.Errorf("failed to schedule appointment: %w", err)
	}

	s.logger.Info("Appointment service: appointment scheduled",
		"appointment_id", a.ID,
		"patient_id", patient.ID,
		"date", a.Date)
	return a, nil
}

// Update applies patch. A new patient id is looked up and its name copied.
func (s *Appointment) Update(ctx context.Context, id string, patch model.AppointmentPatch) (model.Appointment, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return model.Appointment{}, invalid("type", fmt.Sprintf("%q is not a known appointment type", *patch.Type))
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Appointment{}, invalid("status", fmt.Sprintf("%q is not a known appointment status", *patch.Status))
	}
	if patch.Date != nil {
		if err := validDate(*patch.Date); err != nil {
			return model.Appointment{}, err
		}
	}
	if patch.Time != nil {
		if err := validTime(*patch.Time); err != nil {
			return model.Appointment{}, err
		}
	}
	if patch.PatientID != nil {
		patient, err := s.lookupPatient(*patch.PatientID)
		if err != nil {
			return model.Appointment{}, err
		}
		patch.PatientName = &patient.Name
	}

	a, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}

	s.logger.Info("Appointment service: appointment updated", "appointment_id", id)
	return a, nil
}

func (s *Appointment) Cancel(ctx context.Context, id string) (model.Appointment, error) {
	cancelled := model.AppointmentCancelled
	return s.Update(ctx, id, model.AppointmentPatch{Status: &cancelled})
}

func (s *Appointment) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}

	s.logger.Info("Appointment service: appointment deleted", "appointment_id", id)
	return nil
}

func (s *Appointment) lookupPatient(id string) (model.Patient, error) {
	if err := required("patientId", id); err != nil {
		return model.Patient{}, err
	}

	patient, err := s.patients.Get(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Patient{}, invalid("patientId", fmt.Sprintf("%q does not match a patient", id))
		}
		return model.Patient{}, fmt.Errorf("failed to get patient %s: %w", id, err)
	}
	return patient, nil
}
