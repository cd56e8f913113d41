package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Outcome
	}{
		{nil, OutcomeAccepted},
		{ErrAlreadyRegistered, OutcomeAlreadyRegistered},
		{fmt.Errorf("insert: %w", ErrDuplicateKey), OutcomeAlreadyRegistered},
		{fmt.Errorf("get: %w", ErrEventNotFound), OutcomeEventNotFound},
		{ErrRegistrationClosed, OutcomeRegistrationClosed},
		{ErrCapacityExceeded, OutcomeCapacityExceeded},
		{ErrProfileIncomplete, OutcomeProfileRequired},
		{ErrRegistrationNotFound, OutcomeNotFound},
		{ErrVolunteerNotFound, OutcomeNotFound},
		{ErrForbidden, OutcomeForbidden},
		{ErrEventHasRegistrations, OutcomeRefused},
		{fmt.Errorf("%w: bad phone", ErrValidation), OutcomeInvalid},
		{errors.New("disk on fire"), OutcomeFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutcomeOf(tt.err), "%v", tt.err)
	}
}
