package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/emr-server/internal/model"
)

// handleError maps service errors to gRPC status errors. Messages of
// validation errors are passed through, everything unknown is hidden.
func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "record not found")
	case errors.Is(err, model.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "email is already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, model.ErrSessionActive):
		return status.Error(codes.FailedPrecondition, "another user is signed in")
	case errors.Is(err, model.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, "not signed in")
	case errors.Is(err, model.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
