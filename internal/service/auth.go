package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

var _ model.SessionReader = (*Auth)(nil)

// Auth registers and signs in users and owns the current session.
// The session is read from the medium once, in NewAuth.
type Auth struct {
	mu       sync.RWMutex
	current  *model.Session
	users    model.UserStore
	sessions model.SessionStore
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

func NewAuth(
	ctx context.Context,
	users model.UserStore,
	sessions model.SessionStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) (*Auth, error) {
	current, err := sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Auth{
		current:  current,
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Register creates a user and signs them in.
func (a *Auth) Register(ctx context.Context, email, password string) (model.Session, error) {
	a.logger.Debug("Auth service: registering user", "email", email)

	email = strings.TrimSpace(email)
	if email == "" {
		return model.Session{}, fmt.Errorf("%w: email is required", model.ErrInvalidArgument)
	}
	if password == "" {
		return model.Session{}, fmt.Errorf("%w: password is required", model.ErrInvalidArgument)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.users.FindByEmail(email); err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.Session{}, model.ErrAlreadyExists
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if a.current != nil {
		a.logger.Info("Auth service: registration rejected, session active",
			"email", email,
			"current_user", a.current.Email)
		return model.Session{}, model.ErrSessionActive
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password", "error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	session := user.Session()
	if err := a.setSession(ctx, session); err != nil {
		if discardErr := a.users.Discard(ctx, user.ID); discardErr != nil {
			a.logger.Error("Auth service: failed to roll back user",
				"user_id", user.ID,
				"error", discardErr.Error())
			return model.Session{}, errors.Join(err, fmt.Errorf("failed to roll back user: %w", discardErr))
		}
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID, "email", email)

	return session, nil
}

// Login signs in an existing user. Signing in again as the current user
// refreshes the stored session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	a.logger.Debug("Auth service: login attempt", "email", email)

	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login failed, unknown email", "email", email)
			return model.Session{}, model.ErrInvalidCredentials
		}
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: login failed, wrong password", "user_id", user.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	if a.current != nil && a.current.ID != user.ID {
		a.logger.Info("Auth service: login rejected, session active",
			"user_id", user.ID,
			"current_user", a.current.Email)
		return model.Session{}, model.ErrSessionActive
	}

	session := user.Session()
	if err := a.setSession(ctx, session); err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return session, nil
}

// Logout clears the current session. It succeeds when nobody is signed in.
func (a *Auth) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Error("Auth service: failed to clear session", "error", err.Error())
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if a.current != nil {
		a.logger.Info("Auth service: user logged out", "user_id", a.current.ID)
	}
	a.current = nil

	return nil
}

// CurrentUser returns the signed-in user, if any.
func (a *Auth) CurrentUser() (model.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return model.Session{}, false
	}
	return *a.current, true
}

func (a *Auth) setSession(ctx context.Context, session model.Session) error {
	if err := a.sessions.Save(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to save session",
			"user_id", session.ID,
			"error", err.Error())
		return fmt.Errorf("failed to save session: %w", err)
	}
	a.current = &session
	return nil
}
