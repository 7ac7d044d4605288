package model

import "context"

// Medium keys. Each key is written only by the store that owns it.
const (
	KeyUsers                = "users"
	KeyCurrentUser          = "currentUser"
	KeyPatients             = "patients"
	KeyAppointments         = "appointments"
	KeyMessages             = "messages"
	KeyPracticeSettings     = "practiceSettings"
	KeyNotificationSettings = "notificationSettings"
	KeySecuritySettings     = "securitySettings"
)

// Medium is a string-keyed, string-valued persistence substrate.
// Get returns ErrNotFound for a missing key. Remove of a missing key is a no-op.
type Medium interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
