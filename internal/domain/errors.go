package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrVolunteerNotFound    = errors.New("volunteer not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrAlreadyRegistered  = errors.New("volunteer is already registered for this event")
	ErrCapacityExceeded   = errors.New("event capacity exceeded")
	ErrRegistrationClosed = errors.New("registration for this event is closed")
	ErrProfileIncomplete  = errors.New("volunteer profile is incomplete")
)

var (
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrEventHasRegistrations = errors.New("event has registrations")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
)

var (
	ErrExportRowNotFound = errors.New("export row not found")
)
