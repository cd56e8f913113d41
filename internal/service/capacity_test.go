package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type guardMocks struct {
	events *mocks.MockEventRepo
	regs   *mocks.MockRegistrationRepo
	export *mocks.MockExportRecorder
}

func newGuard(t *testing.T) (*CapacityGuard, guardMocks) {
	m := guardMocks{
		events: mocks.NewMockEventRepo(t),
		regs:   mocks.NewMockRegistrationRepo(t),
		export: mocks.NewMockExportRecorder(t),
	}
	m.export.EXPECT().Hold().Return(func() {}).Maybe()
	return NewCapacityGuard(m.events, m.regs, m.export, fixedClock, newTestLogger(t)), m
}

func openEvent(capacity *int) *domain.Event {
	return &domain.Event{
		ID:               10,
		Title:            "Park Cleanup",
		Date:             "2025-04-10",
		Time:             "14:00",
		Capacity:         capacity,
		Active:           true,
		RegistrationOpen: true,
	}
}

func TestCapacityGuard_TryReserve_Success(t *testing.T) {
	g, m := newGuard(t)

	m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(ptr(2)), nil)
	m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(nil, domain.ErrRegistrationNotFound)
	m.regs.EXPECT().CountByEvent(mock.Anything, int64(10)).Return(1, nil)
	m.regs.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Registration")).
		RunAndReturn(func(_ context.Context, reg *domain.Registration) error {
			reg.ID = 99
			return nil
		})
	m.export.EXPECT().RecordCreated(mock.Anything, mock.MatchedBy(func(r domain.Registration) bool {
		return r.ID == 99 && r.Comment == "after lunch"
	})).Return()

	reg, err := g.TryReserve(context.Background(), 5, 10, "after lunch")

	require.NoError(t, err)
	assert.Equal(t, int64(99), reg.ID)
	assert.Equal(t, int64(5), reg.VolunteerID)
	assert.Equal(t, fixedNow, reg.CreatedAt)
	assert.Zero(t, g.locks.size())
}

func TestCapacityGuard_TryReserve_Rejections(t *testing.T) {
	closed := openEvent(nil)
	closed.RegistrationOpen = false
	hidden := openEvent(nil)
	hidden.Active = false
	past := openEvent(nil)
	past.Date = "2025-03-31"

	tests := []struct {
		name  string
		setup func(m guardMocks)
		want  error
	}{
		{
			name: "event not found",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(nil, domain.ErrEventNotFound)
			},
			want: domain.ErrEventNotFound,
		},
		{
			name: "registration closed",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(closed, nil)
			},
			want: domain.ErrRegistrationClosed,
		},
		{
			name: "inactive event",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(hidden, nil)
			},
			want: domain.ErrRegistrationClosed,
		},
		{
			name: "event date passed",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(past, nil)
			},
			want: domain.ErrRegistrationClosed,
		},
		{
			name: "already registered",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(nil), nil)
				m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(&domain.Registration{ID: 1}, nil)
			},
			want: domain.ErrAlreadyRegistered,
		},
		{
			name: "capacity exceeded",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(ptr(2)), nil)
				m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(nil, domain.ErrRegistrationNotFound)
				m.regs.EXPECT().CountByEvent(mock.Anything, int64(10)).Return(2, nil)
			},
			want: domain.ErrCapacityExceeded,
		},
		{
			name: "unique index wins a race",
			setup: func(m guardMocks) {
				m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(nil), nil)
				m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(nil, domain.ErrRegistrationNotFound)
				m.regs.EXPECT().CountByEvent(mock.Anything, int64(10)).Return(0, nil)
				m.regs.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrDuplicateKey)
			},
			want: domain.ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, m := newGuard(t)
			tt.setup(m)

			reg, err := g.TryReserve(context.Background(), 5, 10, "")

			assert.Nil(t, reg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCapacityGuard_TryReserve_StoreError(t *testing.T) {
	g, m := newGuard(t)

	m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(nil), nil)
	m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(nil, errors.New("disk I/O error"))

	_, err := g.TryReserve(context.Background(), 5, 10, "")

	require.Error(t, err)
	assert.Equal(t, domain.OutcomeFailed, domain.OutcomeOf(err))
}

func TestCapacityGuard_Check_ReturnsSummary(t *testing.T) {
	g, m := newGuard(t)

	m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(openEvent(ptr(3)), nil)
	m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(nil, domain.ErrRegistrationNotFound)
	m.regs.EXPECT().CountByEvent(mock.Anything, int64(10)).Return(1, nil)

	summary, err := g.Check(context.Background(), 5, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Registered)
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, 2, *summary.Remaining)
}

func TestCapacityGuard_Release(t *testing.T) {
	reg := &domain.Registration{ID: 7, VolunteerID: 5, EventID: 10}

	t.Run("owner releases", func(t *testing.T) {
		g, m := newGuard(t)
		m.regs.EXPECT().GetByID(mock.Anything, int64(7)).Return(reg, nil)
		m.regs.EXPECT().DeleteByID(mock.Anything, int64(7)).Return(nil)
		m.export.EXPECT().RecordCancelled(mock.Anything, *reg).Return()

		require.NoError(t, g.Release(context.Background(), 7, 5))
	})

	t.Run("someone else is forbidden", func(t *testing.T) {
		g, m := newGuard(t)
		m.regs.EXPECT().GetByID(mock.Anything, int64(7)).Return(reg, nil)

		err := g.Release(context.Background(), 7, 6)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown registration", func(t *testing.T) {
		g, m := newGuard(t)
		m.regs.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, domain.ErrRegistrationNotFound)

		err := g.Release(context.Background(), 7, 5)
		assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	})

	t.Run("deleted meanwhile", func(t *testing.T) {
		g, m := newGuard(t)
		m.regs.EXPECT().GetByID(mock.Anything, int64(7)).Return(reg, nil)
		m.regs.EXPECT().DeleteByID(mock.Anything, int64(7)).Return(domain.ErrRegistrationNotFound)

		err := g.Release(context.Background(), 7, 5)
		assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	})
}

func TestCapacityGuard_AdminRelease_RequiresCapability(t *testing.T) {
	g, _ := newGuard(t)

	err := g.AdminRelease(context.Background(), auth.Admin{}, 10, 5)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCapacityGuard_AdminRelease(t *testing.T) {
	g, m := newGuard(t)
	reg := &domain.Registration{ID: 7, VolunteerID: 5, EventID: 10}

	m.regs.EXPECT().GetByPair(mock.Anything, int64(5), int64(10)).Return(reg, nil)
	m.regs.EXPECT().DeleteByID(mock.Anything, int64(7)).Return(nil)
	m.export.EXPECT().RecordCancelled(mock.Anything, *reg).Return()

	require.NoError(t, g.AdminRelease(context.Background(), testAdmin(t), 10, 5))
}
