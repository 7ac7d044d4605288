package handler

import (
	"context"

	"github.com/dtroode/emr-server/internal/model"
)

// SaveSettingsRequest replaces the documents that are present.
type SaveSettingsRequest struct {
	Practice     *model.PracticeSettings     `json:"practice,omitempty"`
	Notification *model.NotificationSettings `json:"notification,omitempty"`
	Security     *model.SecuritySettings     `json:"security,omitempty"`
}

func (h *EMR) GetSettings(ctx context.Context, _ Empty) (model.Settings, error) {
	s, err := h.services.Settings.All(ctx)
	if err != nil {
		h.logger.Error("Settings handler: failed to load settings", "error", err.Error())
		return model.Settings{}, handleError(err)
	}
	return s, nil
}

// SaveSettings stores the given documents and returns all settings.
func (h *EMR) SaveSettings(ctx context.Context, req SaveSettingsRequest) (model.Settings, error) {
	if req.Practice != nil {
		if err := h.services.Settings.SavePractice(ctx, *req.Practice); err != nil {
			return model.Settings{}, handleError(err)
		}
	}
	if req.Notification != nil {
		if err := h.services.Settings.SaveNotification(ctx, *req.Notification); err != nil {
			return model.Settings{}, handleError(err)
		}
	}
	if req.Security != nil {
		if err := h.services.Settings.SaveSecurity(ctx, *req.Security); err != nil {
			return model.Settings{}, handleError(err)
		}
	}

	h.logger.Debug("Settings handler: settings saved", "user_id", h.userID(ctx))
	return h.GetSettings(ctx, Empty{})
}

func (h *EMR) GetDashboard(ctx context.Context, _ Empty) (model.Dashboard, error) {
	return h.services.Dashboard.Get(ctx), nil
}
