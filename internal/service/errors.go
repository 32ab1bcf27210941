package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by WorkoutService wraps exactly one of them,
// so callers classify with errors.Is(err, ErrValidation) and friends.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)

// --- Error Definitions ---
var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidDate           = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidTime           = fmt.Errorf("%w: time must be HH:MM or HH:MM:SS", ErrValidation)
	ErrInvalidGivenBy        = fmt.Errorf("%w: givenBy must be one of user, trainer, admin", ErrValidation)

	ErrNotesTrainerOnly = fmt.Errorf("%w: only trainers can write notes on trainer-given sessions", ErrAuthorization)
	ErrGivenByMismatch  = fmt.Errorf("%w: givenBy does not match the caller's role", ErrAuthorization)
	ErrTrainerOnly      = fmt.Errorf("%w: trainer role required", ErrAuthorization)
	ErrForbidden        = fmt.Errorf("%w: session belongs to someone else", ErrAuthorization)

	ErrSessionNotFound  = fmt.Errorf("%w: workout session not found", ErrNotFound)
	ErrDayNotFound      = fmt.Errorf("%w: workout day not found", ErrNotFound)
	ErrTemplateNotFound = fmt.Errorf("%w: template not found", ErrNotFound)

	ErrDayConflict = fmt.Errorf("%w: workout day was created concurrently, retry", ErrConflict)
)
