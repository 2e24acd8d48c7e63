package service

import "errors"

// Sentinel errors reported to the transport layer. Not-found and conflict
// conditions are expected outcomes and must be distinguishable from faults.
var (
	ErrSessionNotFound    = errors.New("chat session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
)
