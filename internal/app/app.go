// Package app assembles stores and services over a configured medium.
package app

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/emr-server/internal/api/grpc/handler"
	"github.com/dtroode/emr-server/internal/auth"
	"github.com/dtroode/emr-server/internal/config"
	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
	"github.com/dtroode/emr-server/internal/service"
	"github.com/dtroode/emr-server/internal/storage/file"
	"github.com/dtroode/emr-server/internal/storage/memory"
	storage "github.com/dtroode/emr-server/internal/storage/minio"
	"github.com/dtroode/emr-server/internal/storage/postgres"
	"github.com/dtroode/emr-server/internal/storage/sqlite"
	"github.com/dtroode/emr-server/internal/store"
	"github.com/dtroode/emr-server/internal/token"
)

// OpenMedium connects the medium selected by cfg.Medium.Driver. The returned
// func releases it.
func OpenMedium(ctx context.Context, cfg *config.Config) (model.Medium, func() error, error) {
	noop := func() error { return nil }
	ns := cfg.Medium.Namespace

	switch cfg.Medium.Driver {
	case config.DriverMemory:
		return memory.New(), noop, nil

	case config.DriverFile:
		m, err := file.New(cfg.Medium.Dir, ns)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file medium: %w", err)
		}
		return m, noop, nil

	case config.DriverSQLite:
		m, err := sqlite.Open(ctx, cfg.SQLite.Path, ns)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite medium: %w", err)
		}
		return m, m.Close, nil

	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres medium: %w", err)
		}
		return postgres.NewMedium(db, ns), db.Close, nil

	case config.DriverMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		m, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, ns)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open minio medium: %w", err)
		}
		return m, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown medium driver %q", cfg.Medium.Driver)
}

// App holds the services of one EMR instance.
type App struct {
	Stores       *store.Stores
	Auth         *service.Auth
	Tokens       *service.TokenService
	Patients     *service.Patient
	Appointments *service.Appointment
	Messages     *service.Message
	Settings     *service.Settings
	Dashboard    *service.Dashboard
}

// New loads every store from medium and builds the services on top.
func New(ctx context.Context, medium model.Medium, cfg *config.Config, logger *logger.Logger, opts ...store.Option) (*App, error) {
	stores, err := store.Open(ctx, medium, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open stores: %w", err)
	}

	hasher := auth.NewArgon2Hasher(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	authService, err := service.NewAuth(ctx, stores.Users, stores.Session, hasher, logger)
	if err != nil {
		return nil, err
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	return &App{
		Stores:       stores,
		Auth:         authService,
		Tokens:       service.NewTokenService(tokenManager, authService, logger),
		Patients:     service.NewPatient(stores.Patients, logger),
		Appointments: service.NewAppointment(stores.Appointments, stores.Patients, logger),
		Messages:     service.NewMessage(stores.Messages, stores.Patients, authService, logger),
		Settings:     service.NewSettings(stores.Practice, stores.Notification, stores.Security, logger),
		Dashboard:    service.NewDashboard(stores.Patients, stores.Appointments, stores.Messages, authService, logger),
	}, nil
}

// Handler exposes the services as the EMR gRPC handler.
func (a *App) Handler(contextManager model.ContextManager, logger *logger.Logger) *handler.EMR {
	return handler.NewEMR(handler.Services{
		Auth:         a.Auth,
		Tokens:       a.Tokens,
		Patients:     a.Patients,
		Appointments: a.Appointments,
		Messages:     a.Messages,
		Settings:     a.Settings,
		Dashboard:    a.Dashboard,
	}, contextManager, logger)
}
