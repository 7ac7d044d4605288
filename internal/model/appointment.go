package model

import (
	"context"
	"time"
)

// AppointmentStore defines persistence operations for appointments.
type AppointmentStore interface {
	List() []Appointment
	Get(id string) (Appointment, error)
	Add(ctx context.Context, appointment Appointment) (Appointment, error)
	Update(ctx context.Context, id string, patch AppointmentPatch) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentType enumerates visit kinds.
type AppointmentType string

const (
	AppointmentCheckup      AppointmentType = "checkup"
	AppointmentFollowup     AppointmentType = "followup"
	AppointmentEmergency    AppointmentType = "emergency"
	AppointmentConsultation AppointmentType = "consultation"
)

// Valid reports whether t is a known appointment type.
func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentCheckup, AppointmentFollowup, AppointmentEmergency, AppointmentConsultation:
		return true
	}
	return false
}

// AppointmentStatus enumerates appointment states.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit. PatientName is a snapshot taken when the
// appointment was created and is not refreshed if the patient is renamed.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// EntityID implements Entity.
func (a Appointment) EntityID() string { return a.ID }

// AppointmentPatch is a shallow merge patch.
type AppointmentPatch struct {
	PatientID   *string            `json:"patientId,omitempty"`
	PatientName *string            `json:"patientName,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Time        *string            `json:"time,omitempty"`
	Type        *AppointmentType   `json:"type,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// Apply merges the patch into a.
func (ap AppointmentPatch) Apply(a *Appointment) {
	setString(&a.PatientID, ap.PatientID)
	setString(&a.PatientName, ap.PatientName)
	setString(&a.Date, ap.Date)
	setString(&a.Time, ap.Time)
	setString(&a.Notes, ap.Notes)
	if ap.Type != nil {
		a.Type = *ap.Type
	}
	if ap.Status != nil {
		a.Status = *ap.Status
	}
}

// ScheduleAppointmentParams contains parameters to schedule an appointment.
type ScheduleAppointmentParams struct {
	PatientID string          `json:"patientId"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes"`
}
