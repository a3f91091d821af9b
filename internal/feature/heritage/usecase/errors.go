package usecase

import "errors"

var (
	// ErrDuplicateCoordinates is returned when a point with the same
	// normalized (latitude, longitude) pair already exists. This is a
	// user-facing validation failure, distinct from store faults.
	ErrDuplicateCoordinates = errors.New("coordinates already recorded")

	// ErrInvalidCoordinates is returned when latitude or longitude cannot be
	// parsed as a decimal number.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
