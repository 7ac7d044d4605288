package model

import "errors"

var (
	// ErrNotFound is returned when a record or medium key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when registering an email that is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials is returned when email and password do not match a user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionActive is returned when a different user tries to sign in
	// while a session is open.
	ErrSessionActive = errors.New("another session is active")
	// ErrNotAuthenticated is returned when an operation requires a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidArgument is returned by workflow validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
