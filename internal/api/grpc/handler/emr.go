package handler

import (
	"context"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

// AuthService defines registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.Session, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context) error
	CurrentUser() (model.Session, bool)
}

// TokenService issues bearer tokens for the current session.
type TokenService interface {
	Issue(ctx context.Context) (string, error)
}

type PatientService interface {
	List(ctx context.Context) []model.Patient
	Get(ctx context.Context, id string) (model.Patient, error)
	Add(ctx context.Context, patient model.Patient) (model.Patient, error)
	Update(ctx context.Context, id string, patch model.PatientPatch) (model.Patient, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentService interface {
	List(ctx context.Context) []model.Appointment
	Schedule(ctx context.Context, params model.ScheduleAppointmentParams) (model.Appointment, error)
	Update(ctx context.Context, id string, patch model.AppointmentPatch) (model.Appointment, error)
	Cancel(ctx context.Context, id string) (model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type MessageService interface {
	List(ctx context.Context) []model.Message
	Send(ctx context.Context, params model.SendMessageParams) (model.Message, error)
	MarkRead(ctx context.Context, id string) (model.Message, error)
	Update(ctx context.Context, id string, patch model.MessagePatch) (model.Message, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	All(ctx context.Context) (model.Settings, error)
	SavePractice(ctx context.Context, v model.PracticeSettings) error
	SaveNotification(ctx context.Context, v model.NotificationSettings) error
	SaveSecurity(ctx context.Context, v model.SecuritySettings) error
}

type DashboardService interface {
	Get(ctx context.Context) model.Dashboard
}

// Services groups the dependencies of the EMR handler.
type Services struct {
	Auth         AuthService
	Tokens       TokenService
	Patients     PatientService
	Appointments AppointmentService
	Messages     MessageService
	Settings     SettingsService
	Dashboard    DashboardService
}

// EMR handles the emr.v1.EMR gRPC service.
type EMR struct {
	services       Services
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewEMR creates a new EMR handler.
func NewEMR(services Services, contextManager model.ContextManager, logger *logger.Logger) *EMR {
	return &EMR{
		services:       services,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Empty is the request and response of methods without a payload.
type Empty struct{}

// IDRequest addresses a single record.
type IDRequest struct {
	ID string `json:"id"`
}

// UpdateRequest carries a merge patch for the record with ID.
type UpdateRequest[P any] struct {
	ID    string `json:"id"`
	Patch P      `json:"patch"`
}

// List wraps collections so every response is a JSON object.
type List[T any] struct {
	Items []T `json:"items"`
}

func newList[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Items: items}
}

func (h *EMR) userID(ctx context.Context) string {
	id, _ := h.contextManager.GetUserIDFromContext(ctx)
	return id
}
