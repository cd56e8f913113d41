package domain

import "errors"

// Outcome is the closed set of result tags handed back to the transport.
type Outcome string

const (
	OutcomeAccepted           Outcome = "accepted"
	OutcomeAlreadyRegistered  Outcome = "already_registered"
	OutcomeEventNotFound      Outcome = "event_not_found"
	OutcomeRegistrationClosed Outcome = "registration_closed"
	OutcomeCapacityExceeded   Outcome = "capacity_exceeded"
	OutcomeProfileRequired    Outcome = "profile_required"
	OutcomeReleased           Outcome = "released"
	OutcomeNotFound           Outcome = "not_found"
	OutcomeForbidden          Outcome = "forbidden"
	OutcomeRefused            Outcome = "refused"
	OutcomeInvalid            Outcome = "invalid"
	OutcomeFailed             Outcome = "failed"
)

// OutcomeOf classifies err. A nil error maps to success.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, ErrAlreadyRegistered), errors.Is(err, ErrDuplicateKey):
		return OutcomeAlreadyRegistered
	case errors.Is(err, ErrEventNotFound):
		return OutcomeEventNotFound
	case errors.Is(err, ErrRegistrationClosed):
		return OutcomeRegistrationClosed
	case errors.Is(err, ErrCapacityExceeded):
		return OutcomeCapacityExceeded
	case errors.Is(err, ErrProfileIncomplete):
		return OutcomeProfileRequired
	case errors.Is(err, ErrRegistrationNotFound), errors.Is(err, ErrVolunteerNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, ErrEventHasRegistrations):
		return OutcomeRefused
	case errors.Is(err, ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}
