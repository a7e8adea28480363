package domain

import "errors"

var (
	ErrBootcampNotFound     = errors.New("bootcamp not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAdminNotFound        = errors.New("admin not found")
)

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrForbidden    = errors.New("admin access required")
	ErrSessionEnded = errors.New("session is no longer valid")
)

var (
	ErrAdminExists     = errors.New("email is already an admin")
	ErrLastAdmin       = errors.New("cannot remove the last admin")
	ErrVersionConflict = errors.New("registration was modified concurrently")
)

var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidStatus        = errors.New("invalid registration status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
)
