package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by name or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on any login failure.
	// Unknown name and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid name or password")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
