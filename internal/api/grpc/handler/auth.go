package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/emr-server/internal/model"
)

// Credentials is the Register and Login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  model.Session `json:"user"`
	Token string        `json:"token"`
}

// Register creates an account, signs it in and returns a bearer token.
func (h *EMR) Register(ctx context.Context, req Credentials) (AuthResult, error) {
	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	session, err := h.services.Auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return AuthResult{}, handleError(err)
	}

	return h.issue(ctx, session)
}

// Login signs in and returns a bearer token.
func (h *EMR) Login(ctx context.Context, req Credentials) (AuthResult, error) {
	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	session, err := h.services.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return AuthResult{}, handleError(err)
	}

	return h.issue(ctx, session)
}

func (h *EMR) issue(ctx context.Context, session model.Session) (AuthResult, error) {
	token, err := h.services.Tokens.Issue(ctx)
	if err != nil {
		h.logger.Error("Auth handler: failed to issue token",
			"user_id", session.ID,
			"error", err.Error())
		return AuthResult{}, handleError(err)
	}

	h.logger.Info("Auth handler: session started", "user_id", session.ID)

	return AuthResult{User: session, Token: token}, nil
}

// Logout ends the current session. Tokens issued for it stop working.
func (h *EMR) Logout(ctx context.Context, _ Empty) (Empty, error) {
	if err := h.services.Auth.Logout(ctx); err != nil {
		h.logger.Error("Auth handler: logout failed", "error", err.Error())
		return Empty{}, handleError(err)
	}

	h.logger.Info("Auth handler: session ended", "user_id", h.userID(ctx))
	return Empty{}, nil
}

// CurrentUser returns the signed-in user.
func (h *EMR) CurrentUser(ctx context.Context, _ Empty) (model.Session, error) {
	session, ok := h.services.Auth.CurrentUser()
	if !ok || session.ID != h.userID(ctx) {
		return model.Session{}, status.Error(codes.Unauthenticated, "not signed in")
	}
	return session, nil
}
