package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/emr-server/internal/model"
)

var (
	_ model.SettingsDocument[model.PracticeSettings]     = (*Document[model.PracticeSettings])(nil)
	_ model.SettingsDocument[model.NotificationSettings] = (*Document[model.NotificationSettings])(nil)
	_ model.SettingsDocument[model.SecuritySettings]     = (*Document[model.SecuritySettings])(nil)
)

// Document is a single JSON value under one key. Stored fields are decoded
// over the defaults, so fields missing from older documents keep their
// default value.
type Document[T any] struct {
	medium   model.Medium
	key      string
	defaults func() T
}

func NewDocument[T any](medium model.Medium, key string, defaults func() T) *Document[T] {
	return &Document[T]{medium: medium, key: key, defaults: defaults}
}

func NewPracticeSettings(medium model.Medium) *Document[model.PracticeSettings] {
	return NewDocument(medium, model.KeyPracticeSettings, model.DefaultPracticeSettings)
}

func NewNotificationSettings(medium model.Medium) *Document[model.NotificationSettings] {
	return NewDocument(medium, model.KeyNotificationSettings, model.DefaultNotificationSettings)
}

func NewSecuritySettings(medium model.Medium) *Document[model.SecuritySettings] {
	return NewDocument(medium, model.KeySecuritySettings, model.DefaultSecuritySettings)
}

func (d *Document[T]) Load(ctx context.Context) (T, error) {
	value := d.defaults()

	raw, err := d.medium.Get(ctx, d.key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return value, nil
		}
		return value, fmt.Errorf("failed to load %s: %w", d.key, err)
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return d.defaults(), fmt.Errorf("failed to decode %s: %w", d.key, err)
	}
	return value, nil
}

func (d *Document[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}

	if err := d.medium.Set(ctx, d.key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.key, err)
	}
	return nil
}
