package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistration_ConcurrentStormNeverOvershoots(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	const (
		volunteers = 50
		capacity   = 5
	)
	e := s.event(t, capacity)
	for id := int64(100); id < 100+volunteers; id++ {
		s.volunteer(t, id)
	}

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		full     atomic.Int32
		other    atomic.Int32
	)
	for id := int64(100); id < 100+volunteers; id++ {
		wg.Add(1)
		go func(volunteerID int64) {
			defer wg.Done()
			_, err := s.guard.TryReserve(ctx, volunteerID, e.ID, "")
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, domain.ErrCapacityExceeded):
				full.Add(1)
			default:
				other.Add(1)
				t.Errorf("unexpected reservation error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), accepted.Load())
	assert.Equal(t, int32(volunteers-capacity), full.Load())
	assert.Zero(t, other.Load())

	n, err := s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, n)

	rows, err := s.ledger.CountRows()
	require.NoError(t, err)
	assert.Equal(t, capacity, rows)
	assert.Zero(t, s.guard.locks.size())
}

func TestRegistration_CapacityTwoScenario(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	e := s.event(t, 2)
	for _, id := range []int64{11, 12, 13} {
		s.volunteer(t, id)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []int64{11, 12} {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			_, errs[i] = s.guard.TryReserve(ctx, id, e.ID, "")
		}(i, id)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	_, err := s.guard.TryReserve(ctx, 13, e.ID, "")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, domain.OutcomeCapacityExceeded, domain.OutcomeOf(err))
}

func TestRegistration_ZeroCapacityIsUnlimited(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	e := s.event(t, 0)
	assert.Nil(t, e.Capacity)

	for id := int64(200); id < 230; id++ {
		s.volunteer(t, id)
		_, err := s.guard.TryReserve(ctx, id, e.ID, "")
		require.NoError(t, err)
	}

	n, err := s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestRegistration_DuplicatePairLeavesLedgerUnchanged(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	e := s.event(t, 10)
	s.volunteer(t, 5)

	first, err := s.guard.TryReserve(ctx, 5, e.ID, "first")
	require.NoError(t, err)

	_, err = s.guard.TryReserve(ctx, 5, e.ID, "second")
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	regs, err := s.regs.ListByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, first.ID, regs[0].ID)
	assert.Equal(t, "first", regs[0].Comment)

	rows, err := s.ledger.CountRows()
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestRegistration_DoubleCancelIsNotFound(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	e := s.event(t, 10)
	s.volunteer(t, 5)

	reg, err := s.guard.TryReserve(ctx, 5, e.ID, "")
	require.NoError(t, err)

	require.NoError(t, s.guard.Release(ctx, reg.ID, 5))

	err = s.guard.Release(ctx, reg.ID, 5)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	assert.Equal(t, domain.OutcomeNotFound, domain.OutcomeOf(err))

	err = s.guard.ReleaseByEvent(ctx, 5, e.ID)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	// место освободилось, можно записаться снова
	_, err = s.guard.TryReserve(ctx, 5, e.ID, "")
	require.NoError(t, err)
}

func TestRegistration_ExportRoundTrip(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	const (
		n = 6
		m = 2
	)
	e := s.event(t, 0)
	var regs []*domain.Registration
	for id := int64(1); id <= n; id++ {
		s.volunteer(t, id)
		reg, err := s.guard.TryReserve(ctx, id, e.ID, "")
		require.NoError(t, err)
		regs = append(regs, reg)
	}
	for _, reg := range regs[:m] {
		require.NoError(t, s.guard.ReleaseByEvent(ctx, reg.VolunteerID, e.ID))
	}

	rows, err := s.ledger.Snapshot()
	require.NoError(t, err)

	var created, cancelled int
	for _, r := range rows {
		switch r.Status {
		case domain.ExportStatusCreated:
			created++
		case domain.ExportStatusCancelled:
			cancelled++
		}
		assert.Equal(t, e.Title, r.EventTitle)
		assert.NotEmpty(t, r.FullName)
	}
	assert.Equal(t, n, created)
	assert.Equal(t, m, cancelled)

	live, err := s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, n-m, live)
	assert.Equal(t, live+2*m, len(rows))

	d, err := s.export.Check(ctx)
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestRegistration_ReconcileDuringStormKeepsOneRowPerChange(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.notifier.EXPECT().NotifyDivergence(mock.Anything, mock.Anything).Return().Maybe()

	const volunteers = 120
	e := s.event(t, 0)
	for id := int64(1); id <= volunteers; id++ {
		s.volunteer(t, id)
	}

	stop := make(chan struct{})
	var (
		reconcilerDone sync.WaitGroup
		passes         atomic.Int32
		diverged       atomic.Int32
	)
	reconcilerDone.Add(1)
	go func() {
		defer reconcilerDone.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			d, err := s.export.Reconcile(ctx)
			if err != nil {
				t.Errorf("reconcile: %v", err)
				return
			}
			passes.Add(1)
			if !d.Empty() {
				diverged.Add(1)
			}
		}
	}()

	var wg sync.WaitGroup
	for id := int64(1); id <= volunteers; id++ {
		wg.Add(1)
		go func(volunteerID int64) {
			defer wg.Done()
			if _, err := s.guard.TryReserve(ctx, volunteerID, e.ID, ""); err != nil {
				t.Errorf("reserve %d: %v", volunteerID, err)
				return
			}
			// каждый второй сразу отменяет запись
			if volunteerID%2 == 0 {
				if err := s.guard.ReleaseByEvent(ctx, volunteerID, e.ID); err != nil {
					t.Errorf("release %d: %v", volunteerID, err)
				}
			}
		}(id)
	}
	wg.Wait()
	close(stop)
	reconcilerDone.Wait()

	assert.Positive(t, passes.Load())
	assert.Zero(t, diverged.Load(), "reconcile saw a half-recorded change")

	rows, err := s.ledger.Snapshot()
	require.NoError(t, err)
	assert.Len(t, rows, volunteers+volunteers/2)

	type history struct {
		created, cancelled int
		cancelledFirst     bool
	}
	byReg := make(map[int64]*history)
	byVolunteer := make(map[int64]int64)
	for _, r := range rows {
		h, ok := byReg[r.RegistrationID]
		if !ok {
			h = &history{}
			byReg[r.RegistrationID] = h
		}
		switch r.Status {
		case domain.ExportStatusCreated:
			h.created++
		case domain.ExportStatusCancelled:
			if h.created == 0 {
				h.cancelledFirst = true
			}
			h.cancelled++
		}
		byVolunteer[r.VolunteerID] = r.RegistrationID
	}
	require.Len(t, byReg, volunteers)

	for volunteerID, regID := range byVolunteer {
		h := byReg[regID]
		assert.Equal(t, 1, h.created, "registration %d", regID)
		assert.False(t, h.cancelledFirst, "registration %d", regID)
		if volunteerID%2 == 0 {
			assert.Equal(t, 1, h.cancelled, "registration %d", regID)
		} else {
			assert.Zero(t, h.cancelled, "registration %d", regID)
		}
	}

	d, err := s.export.Check(ctx)
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestRegistration_CascadeDeleteDuringReservationsLeavesNoRows(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	admin := testAdmin(t)

	const volunteers = 60
	e := s.event(t, 0)
	other := s.event(t, 0)
	for id := int64(1); id <= volunteers+1; id++ {
		s.volunteer(t, id)
	}
	kept, err := s.guard.TryReserve(ctx, volunteers+1, other.ID, "")
	require.NoError(t, err)

	started := make(chan struct{})
	var (
		wg       sync.WaitGroup
		first    sync.Once
		accepted atomic.Int32
		notFound atomic.Int32
	)
	for id := int64(1); id <= volunteers; id++ {
		wg.Add(1)
		go func(volunteerID int64) {
			defer wg.Done()
			_, err := s.guard.TryReserve(ctx, volunteerID, e.ID, "")
			switch {
			case err == nil:
				accepted.Add(1)
				first.Do(func() { close(started) })
			case errors.Is(err, domain.ErrEventNotFound):
				notFound.Add(1)
			default:
				t.Errorf("reserve %d: %v", volunteerID, err)
			}
		}(id)
	}

	<-started
	require.NoError(t, s.admin.DeleteEvent(ctx, admin, e.ID, true))
	wg.Wait()

	assert.Positive(t, accepted.Load())
	assert.Equal(t, int32(volunteers), accepted.Load()+notFound.Load())

	n, err := s.regs.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := s.ledger.Snapshot()
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotEqual(t, e.ID, r.EventID, "row %d outlived its event", r.RegistrationID)
	}
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].RegistrationID)

	d, err := s.export.Check(ctx)
	require.NoError(t, err)
	assert.True(t, d.Empty())
}
