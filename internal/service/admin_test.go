package service

import (
	"context"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports/mocks"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (*AdminService, *mocks.MockEventRepo, *mocks.MockRegistrationRepo, *mocks.MockExportRecorder) {
	events := mocks.NewMockEventRepo(t)
	regs := mocks.NewMockRegistrationRepo(t)
	export := mocks.NewMockExportRecorder(t)
	export.EXPECT().Hold().Return(func() {}).Maybe()
	log := newTestLogger(t)
	guard := NewCapacityGuard(events, regs, export, fixedClock, log)
	return NewAdminService(events, regs, guard, export, log), events, regs, export
}

func TestAdminService_RequiresCapability(t *testing.T) {
	svc, _, _, _ := newAdminService(t)
	ctx := context.Background()
	var nobody auth.Admin

	_, err := svc.CreateEvent(ctx, nobody, domain.EventInput{Title: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.UpdateEventField(ctx, nobody, 1, domain.FieldTitle, "Y"), domain.ErrForbidden)
	assert.ErrorIs(t, svc.SetActive(ctx, nobody, 1, false), domain.ErrForbidden)
	assert.ErrorIs(t, svc.SetRegistrationOpen(ctx, nobody, 1, false), domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteEvent(ctx, nobody, 1, true), domain.ErrForbidden)
	_, err = svc.Participants(ctx, nobody, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.ReleaseRegistration(ctx, nobody, 1, 2), domain.ErrForbidden)
}

func TestAdminService_CreateEvent(t *testing.T) {
	svc, events, _, _ := newAdminService(t)

	events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Title == "Park Cleanup" && e.Capacity != nil && *e.Capacity == 30 &&
			e.Active && e.RegistrationOpen && e.Time == "09:00"
	})).RunAndReturn(func(_ context.Context, e *domain.Event) error {
		e.ID = 3
		return nil
	})

	e, err := svc.CreateEvent(context.Background(), testAdmin(t), domain.EventInput{
		Title:    "Park Cleanup",
		Date:     "2025-04-10",
		Time:     "9:00",
		Location: "Central Park",
		Capacity: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)
}

func TestAdminService_CreateEvent_InvalidNeverStored(t *testing.T) {
	svc, _, _, _ := newAdminService(t)

	_, err := svc.CreateEvent(context.Background(), testAdmin(t), domain.EventInput{
		Title:    "Park Cleanup",
		Date:     "10.04.2025",
		Time:     "14:00",
		Location: "Central Park",
	})

	var fe *validation.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "date", fe.Field)
	assert.Equal(t, domain.OutcomeInvalid, domain.OutcomeOf(err))
}

func TestAdminService_UpdateEventField(t *testing.T) {
	svc, events, _, _ := newAdminService(t)

	events.EXPECT().UpdateField(mock.Anything, int64(4), domain.FieldCapacity, mock.MatchedBy(func(v *int) bool {
		return v != nil && *v == 15
	})).Return(nil)

	require.NoError(t, svc.UpdateEventField(context.Background(), testAdmin(t), 4, domain.FieldCapacity, "15"))

	err := svc.UpdateEventField(context.Background(), testAdmin(t), 4, domain.FieldTime, "noon")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_DeleteEvent_RefuseThenCascade(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	admin := testAdmin(t)

	e := s.event(t, 0)
	var ids []int64
	for id := int64(1); id <= 3; id++ {
		s.volunteer(t, id)
		reg, err := s.guard.TryReserve(ctx, id, e.ID, "")
		require.NoError(t, err)
		ids = append(ids, reg.ID)
	}
	other := s.event(t, 0)
	s.volunteer(t, 9)
	kept, err := s.guard.TryReserve(ctx, 9, other.ID, "")
	require.NoError(t, err)

	err = s.admin.DeleteEvent(ctx, admin, e.ID, false)
	assert.ErrorIs(t, err, domain.ErrEventHasRegistrations)
	assert.Equal(t, domain.OutcomeRefused, domain.OutcomeOf(err))

	n, err := s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, s.admin.DeleteEvent(ctx, admin, e.ID, true))

	_, err = s.events.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	n, err = s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := s.ledger.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].RegistrationID)
	for _, r := range rows {
		assert.NotContains(t, ids, r.RegistrationID)
	}

	err = s.admin.DeleteEvent(ctx, admin, e.ID, false)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAdminService_Participants(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	e := s.event(t, 5)
	for _, id := range []int64{3, 1, 2} {
		s.volunteer(t, id)
		_, err := s.guard.TryReserve(ctx, id, e.ID, "")
		require.NoError(t, err)
	}

	p, err := s.admin.Participants(ctx, testAdmin(t), e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Summary.Registered)
	require.Len(t, p.Participants, 3)
	assert.Equal(t, "Volunteer 001", p.Participants[0].Volunteer.FullName)
	assert.Equal(t, "Volunteer 003", p.Participants[2].Volunteer.FullName)

	require.NoError(t, s.admin.ReleaseRegistration(ctx, testAdmin(t), e.ID, 2))
	p, err = s.admin.Participants(ctx, testAdmin(t), e.ID)
	require.NoError(t, err)
	assert.Len(t, p.Participants, 2)
}

func TestAdminService_ToggleFlagsBlockSignups(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	admin := testAdmin(t)

	e := s.event(t, 5)
	s.volunteer(t, 1)

	require.NoError(t, s.admin.SetRegistrationOpen(ctx, admin, e.ID, false))
	_, err := s.guard.TryReserve(ctx, 1, e.ID, "")
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)

	require.NoError(t, s.admin.SetRegistrationOpen(ctx, admin, e.ID, true))
	require.NoError(t, s.admin.SetActive(ctx, admin, e.ID, false))
	_, err = s.guard.TryReserve(ctx, 1, e.ID, "")
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)

	require.NoError(t, s.admin.SetActive(ctx, admin, e.ID, true))
	_, err = s.guard.TryReserve(ctx, 1, e.ID, "")
	require.NoError(t, err)

	assert.ErrorIs(t, s.admin.SetActive(ctx, admin, 404, true), domain.ErrEventNotFound)
}
