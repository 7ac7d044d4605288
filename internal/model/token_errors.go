package model

import "errors"

var (
	ErrTokenInvalid = errors.New("access token invalid")
	ErrTokenExpired = errors.New("access token expired")
	// ErrTokenSessionEnded is returned for a well-formed token whose user is
	// no longer the signed-in user.
	ErrTokenSessionEnded = errors.New("access token session ended")
)
