package service

import (
	"context"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports/mocks"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProfile() domain.ProfileInput {
	return domain.ProfileInput{
		FullName:  " Anna Petrova ",
		Group:     "IT-21",
		BirthDate: "01.02.2003",
		Phone:     "+7 999 000-11-22",
		Handle:    "@anna",
	}
}

func TestProfileService_Touch(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewProfileService(repo, mocks.NewMockRegistrationRepo(t), newTestLogger(t))

	repo.EXPECT().Ensure(mock.Anything, int64(42), "id42").Return(&domain.Volunteer{ID: 42, FullName: "id42"}, nil)

	v, err := svc.Touch(context.Background(), 42, "")

	require.NoError(t, err)
	assert.Equal(t, "id42", v.FullName)
}

func TestProfileService_Complete(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewProfileService(repo, mocks.NewMockRegistrationRepo(t), newTestLogger(t))

	repo.EXPECT().SaveProfile(mock.Anything, int64(42), mock.MatchedBy(func(in domain.ProfileInput) bool {
		return in.FullName == "Anna Petrova" && in.Group == "IT-21"
	})).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.Volunteer{ID: 42, FullName: "Anna Petrova"}, nil)

	v, err := svc.Complete(context.Background(), 42, validProfile())

	require.NoError(t, err)
	assert.Equal(t, int64(42), v.ID)
}

func TestProfileService_Complete_InvalidNeverSaved(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(in *domain.ProfileInput)
		field string
	}{
		{name: "malformed birth date", edit: func(in *domain.ProfileInput) { in.BirthDate = "2003-02-01" }, field: "birth_date"},
		{name: "impossible birth date", edit: func(in *domain.ProfileInput) { in.BirthDate = "31.02.2003" }, field: "birth_date"},
		{name: "phone with letters", edit: func(in *domain.ProfileInput) { in.Phone = "call me" }, field: "phone"},
		{name: "missing name", edit: func(in *domain.ProfileInput) { in.FullName = "  " }, field: "full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// без EXPECT: любой вызов репозитория провалит тест
			repo := mocks.NewMockVolunteerRepo(t)
			svc := NewProfileService(repo, mocks.NewMockRegistrationRepo(t), newTestLogger(t))

			in := validProfile()
			tt.edit(&in)
			_, err := svc.Complete(context.Background(), 42, in)

			var fe *validation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestProfileService_RequireComplete(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewProfileService(repo, mocks.NewMockRegistrationRepo(t), newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Volunteer{ID: 1, FullName: "id1"}, nil)
	repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Volunteer{
		ID: 2, FullName: "Anna", Group: "IT-21", BirthDate: "01.02.2003", Phone: "+79990001122",
	}, nil)

	_, err := svc.RequireComplete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
	assert.Equal(t, domain.OutcomeProfileRequired, domain.OutcomeOf(err))

	v, err := svc.RequireComplete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Anna", v.FullName)
}
