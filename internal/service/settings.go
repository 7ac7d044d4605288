package service

import (
	"context"
	"fmt"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

type Settings struct {
	practice     model.SettingsDocument[model.PracticeSettings]
	notification model.SettingsDocument[model.NotificationSettings]
	security     model.SettingsDocument[model.SecuritySettings]
	logger       *logger.Logger
}

func NewSettings(
	practice model.SettingsDocument[model.PracticeSettings],
	notification model.SettingsDocument[model.NotificationSettings],
	security model.SettingsDocument[model.SecuritySettings],
	logger *logger.Logger,
) *Settings {
	return &Settings{
		practice:     practice,
		notification: notification,
		security:     security,
		logger:       logger,
	}
}

func (s *Settings) Practice(ctx context.Context) (model.PracticeSettings, error) {
	return s.practice.Load(ctx)
}

func (s *Settings) Notification(ctx context.Context) (model.NotificationSettings, error) {
	return s.notification.Load(ctx)
}

func (s *Settings) Security(ctx context.Context) (model.SecuritySettings, error) {
	return s.security.Load(ctx)
}

func (s *Settings) SavePractice(ctx context.Context, v model.PracticeSettings) error {
	if err := required("practiceName", v.PracticeName); err != nil {
		return err
	}
	if err := s.practice.Save(ctx, v); err != nil {
		return fmt.Errorf("failed to save practice settings: %w", err)
	}
	s.logger.Info("Settings service: practice settings saved")
	return nil
}

func (s *Settings) SaveNotification(ctx context.Context, v model.NotificationSettings) error {
	if err := s.notification.Save(ctx, v); err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	s.logger.Info("Settings service: notification settings saved")
	return nil
}

func (s *Settings) SaveSecurity(ctx context.Context, v model.SecuritySettings) error {
	if err := s.security.Save(ctx, v); err != nil {
		return fmt.Errorf("failed to save security settings: %w", err)
	}
	s.logger.Info("Settings service: security settings saved")
	return nil
}

// All loads the three documents.
func (s *Settings) All(ctx context.Context) (model.Settings, error) {
	practice, err := s.Practice(ctx)
	if err != nil {
		return model.Settings{}, err
	}
	notification, err := s.Notification(ctx)
	if err != nil {
		return model.Settings{}, err
	}
	security, err := s.Security(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	return model.Settings{
		Practice:     practice,
		Notification: notification,
		Security:     security,
	}, nil
}
