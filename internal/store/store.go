package store

import (
	"context"
	"fmt"

	"github.com/dtroode/emr-server/internal/model"
)

// Stores bundles every store over one medium.
type Stores struct {
	Users        *UserStore
	Session      *SessionStore
	Patients     *PatientStore
	Appointments *AppointmentStore
	Messages     *MessageStore
	Practice     *Document[model.PracticeSettings]
	Notification *Document[model.NotificationSettings]
	Security     *Document[model.SecuritySettings]
}

// Open loads all collections from medium.
func Open(ctx context.Context, medium model.Medium, opts ...Option) (*Stores, error) {
	users, err := NewUserStore(ctx, medium, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open users: %w", err)
	}
	patients, err := NewPatientStore(ctx, medium, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open patients: %w", err)
	}
	appointments, err := NewAppointmentStore(ctx, medium, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open appointments: %w", err)
	}
	messages, err := NewMessageStore(ctx, medium, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open messages: %w", err)
	}

	return &Stores{
		Users:        users,
		Session:      NewSessionStore(medium),
		Patients:     patients,
		Appointments: appointments,
		Messages:     messages,
		Practice:     NewPracticeSettings(medium),
		Notification: NewNotificationSettings(medium),
		Security:     NewSecuritySettings(medium),
	}, nil
}
