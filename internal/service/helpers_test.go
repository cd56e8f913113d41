package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/config"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/exportledger"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/repository"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports/mocks"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var fixedNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

const adminID int64 = 1

func testAdmin(t *testing.T) auth.Admin {
	t.Helper()
	admin, err := auth.NewAuthorizer([]int64{adminID}).Verify(adminID)
	require.NoError(t, err)
	return admin
}

// stack wires the real SQLite repositories and CSV ledger together.
type stack struct {
	events     *repository.EventRepository
	regs       *repository.RegistrationRepository
	volunteers *repository.VolunteerRepository
	ledger     *exportledger.CSVLedger
	export     *ExportSync
	guard      *CapacityGuard
	admin      *AdminService
	profiles   *ProfileService
	notifier   *mocks.MockOperatorNotifier
}

func newStack(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	db, err := storage.OpenSQLite(ctx, config.SQLiteConfig{
		Path:        filepath.Join(dir, "volunteers.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = storage.Migrate(ctx, db)
	require.NoError(t, err)

	ledger, err := exportledger.New(filepath.Join(dir, "registrations.csv"), time.UTC)
	require.NoError(t, err)

	log := newTestLogger(t)
	s := &stack{
		events:     repository.NewEventRepo(db),
		regs:       repository.NewRegistrationRepo(db),
		volunteers: repository.NewVolunteerRepo(db),
		ledger:     ledger,
		notifier:   mocks.NewMockOperatorNotifier(t),
	}
	s.export = NewExportSync(ledger, s.regs, s.volunteers, s.events, s.notifier,
		ExportOptions{RetryAttempts: 2, RetryDelay: time.Millisecond}, fixedClock, log)
	s.guard = NewCapacityGuard(s.events, s.regs, s.export, fixedClock, log)
	s.admin = NewAdminService(s.events, s.regs, s.guard, s.export, log)
	s.profiles = NewProfileService(s.volunteers, s.regs, log)
	return s
}

func (s *stack) volunteer(t *testing.T, id int64) {
	t.Helper()
	_, err := s.profiles.Complete(context.Background(), id, domain.ProfileInput{
		FullName:  fmt.Sprintf("Volunteer %03d", id),
		Group:     "IT-21",
		BirthDate: "01.02.2003",
		Phone:     "+79990001122",
		Handle:    fmt.Sprintf("@v%d", id),
	})
	require.NoError(t, err)
}

func (s *stack) event(t *testing.T, capacity int) *domain.Event {
	t.Helper()
	e, err := s.admin.CreateEvent(context.Background(), testAdmin(t), domain.EventInput{
		Title:    "Park Cleanup",
		Date:     "2025-04-10",
		Time:     "14:00",
		Location: "Central Park",
		Capacity: capacity,
	})
	require.NoError(t, err)
	return e
}

func ptr[T any](v T) *T { return &v }
