package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/config"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.OpenSQLite(context.Background(), config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "repo.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = storage.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

func capacity(n int) *int { return &n }

func createEvent(t *testing.T, repo *EventRepository, title, date string, cap *int) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Title:            title,
		Date:             date,
		Time:             "14:00",
		Location:         "Central Park",
		Capacity:         cap,
		Active:           true,
		RegistrationOpen: true,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	require.NotZero(t, e.ID)
	return e
}

func TestVolunteerRepository_EnsureAndSave(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepo(db)
	ctx := context.Background()

	v, err := repo.Ensure(ctx, 10, "Anna")
	require.NoError(t, err)
	assert.Equal(t, "Anna", v.FullName)
	assert.False(t, v.Complete())

	// повторный контакт не перезаписывает профиль
	v, err = repo.Ensure(ctx, 10, "Другое имя")
	require.NoError(t, err)
	assert.Equal(t, "Anna", v.FullName)

	require.NoError(t, repo.SaveProfile(ctx, 10, domain.ProfileInput{
		FullName:  "Anna Petrova",
		Group:     "IT-21",
		BirthDate: "01.02.2003",
		Phone:     "+79990001122",
		Handle:    "@anna",
	}))

	v, err = repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Anna Petrova", v.FullName)
	assert.Equal(t, "IT-21", v.Group)
	assert.Equal(t, "@anna", v.Handle)
	assert.True(t, v.Complete())

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrVolunteerNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEventRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	e := createEvent(t, repo, "Park Cleanup", "2030-04-10", nil)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Park Cleanup", got.Title)
	assert.Nil(t, got.Capacity)
	assert.True(t, got.Active)
	assert.True(t, got.RegistrationOpen)
	assert.Empty(t, got.Description)

	require.NoError(t, repo.UpdateField(ctx, e.ID, domain.FieldCapacity, capacity(5)))
	require.NoError(t, repo.UpdateField(ctx, e.ID, domain.FieldDescription, "Bring gloves"))
	require.NoError(t, repo.SetRegistrationOpen(ctx, e.ID, false))
	require.NoError(t, repo.SetActive(ctx, e.ID, false))

	got, err = repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Capacity)
	assert.Equal(t, 5, *got.Capacity)
	assert.Equal(t, "Bring gloves", got.Description)
	assert.False(t, got.RegistrationOpen)
	assert.False(t, got.Active)

	assert.ErrorIs(t, repo.SetActive(ctx, 999, true), domain.ErrEventNotFound)
	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	late := createEvent(t, repo, "Late", "2030-05-01", capacity(3))
	early := createEvent(t, repo, "Early", "2030-04-01", nil)
	closed := createEvent(t, repo, "Closed", "2030-04-15", nil)
	require.NoError(t, repo.SetRegistrationOpen(ctx, closed.ID, false))
	old := createEvent(t, repo, "Old", "2020-01-01", nil)

	all, err := repo.List(ctx, domain.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, old.ID, all[0].Event.ID)
	assert.Equal(t, early.ID, all[1].Event.ID)

	open, err := repo.List(ctx, domain.EventFilter{OpenOnly: true, FromDate: "2025-01-01"})
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, early.ID, open[0].Event.ID)
	assert.Equal(t, late.ID, open[1].Event.ID)
	require.NotNil(t, open[1].Remaining)
	assert.Equal(t, 3, *open[1].Remaining)
	assert.Nil(t, open[0].Remaining)
}

func TestRegistrationRepository_InsertDuplicateAndDelete(t *testing.T) {
	db := newTestDB(t)
	events := NewEventRepo(db)
	volunteers := NewVolunteerRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	e := createEvent(t, events, "Cleanup", "2030-04-10", nil)
	_, err := volunteers.Ensure(ctx, 1, "Anna")
	require.NoError(t, err)

	reg := &domain.Registration{VolunteerID: 1, EventID: e.ID, Comment: "after 15:00"}
	require.NoError(t, repo.Insert(ctx, reg))
	assert.NotZero(t, reg.ID)

	dup := &domain.Registration{VolunteerID: 1, EventID: e.ID}
	assert.ErrorIs(t, repo.Insert(ctx, dup), domain.ErrDuplicateKey)

	n, err := repo.CountByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.GetByPair(ctx, 1, e.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, got.ID)
	assert.Equal(t, "after 15:00", got.Comment)

	mine, err := repo.ListByVolunteer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Cleanup", mine[0].Event.Title)

	participants, err := repo.ListParticipants(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Anna", participants[0].Volunteer.FullName)

	require.NoError(t, repo.DeleteByPair(ctx, 1, e.ID))
	assert.ErrorIs(t, repo.DeleteByPair(ctx, 1, e.ID), domain.ErrRegistrationNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, reg.ID), domain.ErrRegistrationNotFound)
}

func TestRegistrationRepository_InsertUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	volunteers := NewVolunteerRepo(db)
	repo := NewRegistrationRepo(db)
	ctx := context.Background()

	_, err := volunteers.Ensure(ctx, 1, "Anna")
	require.NoError(t, err)

	err = repo.Insert(ctx, &domain.Registration{VolunteerID: 1, EventID: 404})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_DeleteRefuseAndCascade(t *testing.T) {
	db := newTestDB(t)
	events := NewEventRepo(db)
	volunteers := NewVolunteerRepo(db)
	regs := NewRegistrationRepo(db)
	ctx := context.Background()

	e := createEvent(t, events, "Cleanup", "2030-04-10", nil)
	for id := int64(1); id <= 3; id++ {
		_, err := volunteers.Ensure(ctx, id, "V")
		require.NoError(t, err)
		require.NoError(t, regs.Insert(ctx, &domain.Registration{VolunteerID: id, EventID: e.ID}))
	}

	assert.ErrorIs(t, events.Delete(ctx, e.ID), domain.ErrEventHasRegistrations)
	assert.ErrorIs(t, events.Delete(ctx, 999), domain.ErrEventNotFound)

	removed, err := events.DeleteCascade(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 3)

	_, err = events.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	n, err := regs.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	empty := createEvent(t, events, "Empty", "2030-04-11", nil)
	require.NoError(t, events.Delete(ctx, empty.ID))
}

func TestStatsRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	events := NewEventRepo(db)
	volunteers := NewVolunteerRepo(db)
	regs := NewRegistrationRepo(db)
	stats := NewStatsRepo(db)
	ctx := context.Background()

	a := createEvent(t, events, "A", "2030-04-10", nil)
	b := createEvent(t, events, "B", "2030-04-11", nil)
	createEvent(t, events, "C", "2030-04-12", nil)
	for id := int64(1); id <= 3; id++ {
		_, err := volunteers.Ensure(ctx, id, "V")
		require.NoError(t, err)
		require.NoError(t, regs.Insert(ctx, &domain.Registration{VolunteerID: id, EventID: b.ID}))
	}
	require.NoError(t, regs.Insert(ctx, &domain.Registration{VolunteerID: 1, EventID: a.ID}))

	s, err := stats.Stats(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Volunteers)
	assert.Equal(t, 3, s.Events)
	assert.Equal(t, 4, s.Registrations)
	require.Len(t, s.TopEvents, 2)
	assert.Equal(t, b.ID, s.TopEvents[0].EventID)
	assert.Equal(t, 3, s.TopEvents[0].Registrations)
}
