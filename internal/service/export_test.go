package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exportMocks struct {
	ledger     *mocks.MockExportLedger
	regs       *mocks.MockRegistrationRepo
	volunteers *mocks.MockVolunteerRepo
	events     *mocks.MockEventRepo
	notifier   *mocks.MockOperatorNotifier
}

func newExportSync(t *testing.T, attempts uint64) (*ExportSync, exportMocks) {
	m := exportMocks{
		ledger:     mocks.NewMockExportLedger(t),
		regs:       mocks.NewMockRegistrationRepo(t),
		volunteers: mocks.NewMockVolunteerRepo(t),
		events:     mocks.NewMockEventRepo(t),
		notifier:   mocks.NewMockOperatorNotifier(t),
	}
	s := NewExportSync(m.ledger, m.regs, m.volunteers, m.events, m.notifier,
		ExportOptions{RetryAttempts: attempts, RetryDelay: time.Millisecond}, fixedClock, newTestLogger(t))
	return s, m
}

func (m exportMocks) resolves(volunteerID, eventID int64) {
	m.volunteers.EXPECT().GetByID(mock.Anything, volunteerID).
		Return(&domain.Volunteer{ID: volunteerID, FullName: "Anna"}, nil).Maybe()
	m.events.EXPECT().GetByID(mock.Anything, eventID).
		Return(&domain.Event{ID: eventID, Title: "Park Cleanup"}, nil).Maybe()
}

func TestExportSync_RecordCreated(t *testing.T) {
	s, m := newExportSync(t, 3)
	m.resolves(5, 10)

	m.ledger.EXPECT().AppendCreated(mock.MatchedBy(func(r domain.ExportRow) bool {
		return r.RegistrationID == 7 && r.FullName == "Anna" && r.EventTitle == "Park Cleanup" &&
			r.ExportedAt.Equal(fixedNow)
	})).Return(nil).Once()

	s.RecordCreated(context.Background(), domain.Registration{ID: 7, VolunteerID: 5, EventID: 10})
}

func TestExportSync_RecordCreated_RetriesThenSucceeds(t *testing.T) {
	s, m := newExportSync(t, 3)
	m.resolves(5, 10)

	m.ledger.EXPECT().AppendCreated(mock.Anything).Return(errors.New("file locked")).Twice()
	m.ledger.EXPECT().AppendCreated(mock.Anything).Return(nil).Once()

	s.RecordCreated(context.Background(), domain.Registration{ID: 7, VolunteerID: 5, EventID: 10})
}

func TestExportSync_RecordCancelled_AlertsAfterRetries(t *testing.T) {
	s, m := newExportSync(t, 3)
	m.resolves(5, 10)
	writeErr := errors.New("disk full")

	m.ledger.EXPECT().AppendCancelled(mock.Anything).Return(writeErr).Times(3)
	m.notifier.EXPECT().NotifyExportFailure(mock.Anything, "append_cancelled", []int64{7}, writeErr).Return().Once()

	s.RecordCancelled(context.Background(), domain.Registration{ID: 7, VolunteerID: 5, EventID: 10})
}

func TestExportSync_RecordCreated_MissingEventStillExports(t *testing.T) {
	s, m := newExportSync(t, 1)
	m.volunteers.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Volunteer{ID: 5}, nil)
	m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(nil, domain.ErrEventNotFound)

	m.ledger.EXPECT().AppendCreated(mock.MatchedBy(func(r domain.ExportRow) bool {
		return r.EventID == 10 && r.EventTitle == ""
	})).Return(nil)

	s.RecordCreated(context.Background(), domain.Registration{ID: 7, VolunteerID: 5, EventID: 10})
}

func TestExportSync_Purge(t *testing.T) {
	s, m := newExportSync(t, 2)

	m.ledger.EXPECT().RemoveByRegistrationID([]int64{1, 2}).Return(0, errors.New("rename failed")).Once()
	m.ledger.EXPECT().RemoveByRegistrationID([]int64{1, 2}).Return(3, nil).Once()

	s.Purge(context.Background(), []int64{1, 2})
	s.Purge(context.Background(), nil)
}

func TestExportSync_Purge_Alerts(t *testing.T) {
	s, m := newExportSync(t, 1)
	purgeErr := errors.New("rename failed")

	m.ledger.EXPECT().RemoveByRegistrationID([]int64{1}).Return(0, purgeErr)
	m.notifier.EXPECT().NotifyExportFailure(mock.Anything, "purge", []int64{1}, purgeErr).Return()

	s.Purge(context.Background(), []int64{1})
}

func TestExportSync_MarkStatus(t *testing.T) {
	s, m := newExportSync(t, 3)

	m.ledger.EXPECT().PatchStatusByRegistrationID(int64(4), domain.ExportStatusCancelled).Return(nil)
	require.NoError(t, s.MarkStatus(context.Background(), 4, domain.ExportStatusCancelled))

	// отсутствующая строка не ретраится
	m.ledger.EXPECT().PatchStatusByRegistrationID(int64(5), domain.ExportStatusCreated).
		Return(domain.ErrExportRowNotFound).Once()
	err := s.MarkStatus(context.Background(), 5, domain.ExportStatusCreated)
	assert.ErrorIs(t, err, domain.ErrExportRowNotFound)

	err = s.MarkStatus(context.Background(), 5, "lost")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func exportRow(id int64, status domain.ExportStatus) domain.ExportRow {
	return domain.ExportRow{RegistrationID: id, VolunteerID: id, EventID: 10, Status: status}
}

func TestExportSync_Check(t *testing.T) {
	s, m := newExportSync(t, 1)

	m.regs.EXPECT().ListAll(mock.Anything).Return([]domain.Registration{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	m.ledger.EXPECT().Snapshot().Return([]domain.ExportRow{
		exportRow(1, domain.ExportStatusCreated),
		exportRow(2, domain.ExportStatusCreated),
		exportRow(2, domain.ExportStatusCancelled),
		exportRow(4, domain.ExportStatusCreated),
		exportRow(5, domain.ExportStatusCreated),
		exportRow(5, domain.ExportStatusCancelled),
	}, nil)

	d, err := s.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, d.MissingCreated)
	assert.Equal(t, []int64{4}, d.MissingCancelled)
	assert.False(t, d.Empty())
}

func TestExportSync_Reconcile(t *testing.T) {
	s, m := newExportSync(t, 1)
	m.resolves(3, 10)

	m.regs.EXPECT().ListAll(mock.Anything).Return([]domain.Registration{
		{ID: 1, VolunteerID: 1, EventID: 10},
		{ID: 3, VolunteerID: 3, EventID: 10},
	}, nil)
	m.ledger.EXPECT().Snapshot().Return([]domain.ExportRow{
		exportRow(1, domain.ExportStatusCreated),
		exportRow(4, domain.ExportStatusCreated),
	}, nil)

	want := domain.Divergence{MissingCreated: []int64{3}, MissingCancelled: []int64{4}}
	m.notifier.EXPECT().NotifyDivergence(mock.Anything, want).Return()
	m.ledger.EXPECT().AppendCreated(mock.MatchedBy(func(r domain.ExportRow) bool {
		return r.RegistrationID == 3
	})).Return(nil)
	m.ledger.EXPECT().AppendCancelled(mock.MatchedBy(func(r domain.ExportRow) bool {
		return r.RegistrationID == 4 && r.ExportedAt.Equal(fixedNow)
	})).Return(nil)

	d, err := s.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, d)
}

func TestExportSync_Reconcile_InSync(t *testing.T) {
	s, m := newExportSync(t, 1)

	m.regs.EXPECT().ListAll(mock.Anything).Return([]domain.Registration{{ID: 1}}, nil)
	m.ledger.EXPECT().Snapshot().Return([]domain.ExportRow{exportRow(1, domain.ExportStatusCreated)}, nil)

	d, err := s.Reconcile(context.Background())

	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestExportSync_Rebuild(t *testing.T) {
	s, m := newExportSync(t, 1)

	m.regs.EXPECT().ListAll(mock.Anything).Return([]domain.Registration{
		{ID: 1, VolunteerID: 5, EventID: 10},
		{ID: 2, VolunteerID: 5, EventID: 10},
	}, nil)
	m.volunteers.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Volunteer{ID: 5, FullName: "Anna"}, nil).Once()
	m.events.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Event{ID: 10, Title: "Park Cleanup"}, nil).Once()
	m.ledger.EXPECT().Replace(mock.MatchedBy(func(rows []domain.ExportRow) bool {
		return len(rows) == 2 && rows[1].FullName == "Anna" && rows[1].Status == domain.ExportStatusCreated
	})).Return(nil)

	n, err := s.Rebuild(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestExportSync_ReconcileWaitsForHold(t *testing.T) {
	s, m := newExportSync(t, 1)

	m.regs.EXPECT().ListAll(mock.Anything).Return(nil, nil)
	m.ledger.EXPECT().Snapshot().Return(nil, nil)

	done := s.Hold()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_, _ = s.Reconcile(context.Background())
	}()

	select {
	case <-finished:
		t.Fatal("reconcile ran while a write was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	done()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("reconcile did not resume after the hold was released")
	}
}
