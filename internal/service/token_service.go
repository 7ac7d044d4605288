package service

import (
	"context"
	"fmt"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

// TokenService issues bearer tokens for the signed-in user and checks that a
// presented token still belongs to the current session.
type TokenService struct {
	manager  model.TokenManager
	sessions model.SessionReader
	logger   *logger.Logger
}

func NewTokenService(manager model.TokenManager, sessions model.SessionReader, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, sessions: sessions, logger: logger}
}

// Issue creates an access token for the current session.
func (s *TokenService) Issue(_ context.Context) (string, error) {
	session, ok := s.sessions.CurrentUser()
	if !ok {
		return "", model.ErrNotAuthenticated
	}

	access, err := s.manager.GenerateAccessToken(session.ID)
	if err != nil {
		s.logger.Error("Token service: failed to issue access token",
			"user_id", session.ID,
			"error", err.Error())
		return "", fmt.Errorf("issue access: %w", err)
	}

	return access, nil
}

// GetUserID parses token and returns its user when that user is still
// signed in.
func (s *TokenService) GetUserID(_ context.Context, token string) (string, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return "", err
	}

	session, ok := s.sessions.CurrentUser()
	if !ok || session.ID != userID {
		s.logger.Debug("Token service: token outlived its session", "user_id", userID)
		return "", model.ErrTokenSessionEnded
	}

	return userID, nil
}
