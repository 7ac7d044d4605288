package model

import "context"

// PracticeSettings describes the practice.
type PracticeSettings struct {
	PracticeName string `json:"practiceName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Timezone     string `json:"timezone"`
}

// NotificationSettings holds notification preferences.
type NotificationSettings struct {
	EmailNotifications   bool `json:"emailNotifications"`
	SMSNotifications     bool `json:"smsNotifications"`
	AppointmentReminders bool `json:"appointmentReminders"`
	MarketingEmails      bool `json:"marketingEmails"`
}

// SecuritySettings holds security preferences. Durations are kept as the
// strings the settings form edits (minutes and days).
type SecuritySettings struct {
	TwoFactorAuth  bool   `json:"twoFactorAuth"`
	SessionTimeout string `json:"sessionTimeout"`
	PasswordExpiry string `json:"passwordExpiry"`
	IPWhitelist    string `json:"ipWhitelist"`
}

// DefaultPracticeSettings returns the values used when nothing is stored.
func DefaultPracticeSettings() PracticeSettings {
	return PracticeSettings{
		PracticeName: "EMR Clinic",
		Address:      "123 Medical Plaza",
		Phone:        "(555) 123-4567",
		Email:        "contact@emrclinic.com",
		Website:      "www.emrclinic.com",
		Timezone:     "America/New_York",
	}
}

// DefaultNotificationSettings returns the values used when nothing is stored.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications:   true,
		SMSNotifications:     false,
		AppointmentReminders: true,
		MarketingEmails:      false,
	}
}

// DefaultSecuritySettings returns the values used when nothing is stored.
func DefaultSecuritySettings() SecuritySettings {
	return SecuritySettings{
		TwoFactorAuth:  false,
		SessionTimeout: "30",
		PasswordExpiry: "90",
		IPWhitelist:    "",
	}
}

// SettingsDocument persists one settings document merged over defaults.
type SettingsDocument[T any] interface {
	Load(ctx context.Context) (T, error)
	Save(ctx context.Context, value T) error
}

// Settings bundles the three settings documents.
type Settings struct {
	Practice     PracticeSettings     `json:"practice"`
	Notification NotificationSettings `json:"notification"`
	Security     SecuritySettings     `json:"security"`
}
