package model

import (
	"context"
	"time"
)

// Role is a user's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account as stored under the users key.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntityID implements Entity.
func (u User) EntityID() string { return u.ID }

// Session returns the user without credential material.
func (u User) Session() Session {
	return Session{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Session is the signed-in user's redacted projection.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStore persists the users collection.
type UserStore interface {
	FindByEmail(email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	// Discard undoes a Create whose registration could not complete.
	Discard(ctx context.Context, id string) error
}

// SessionStore persists the current session pointer.
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, session Session) error
	Clear(ctx context.Context) error
}

// SessionReader exposes the current session to callers.
type SessionReader interface {
	CurrentUser() (Session, bool)
}

// PasswordHasher derives and verifies password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}
