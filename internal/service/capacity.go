package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CapacityGuard is the only way registrations get created or released.
// Count and insert for one event run under that event's lock, so two
// concurrent reservations can never both take the last slot.
type CapacityGuard struct {
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	export    ports.ExportRecorder
	locks     *eventLocks
	now       Clock
	logger    logger.Logger
}

func NewCapacityGuard(
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	export ports.ExportRecorder,
	now Clock,
	logger logger.Logger,
) *CapacityGuard {
	return &CapacityGuard{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		export:    export,
		locks:     newEventLocks(),
		now:       now,
		logger:    logger,
	}
}

func (g *CapacityGuard) Check(ctx context.Context, volunteerID, eventID int64) (*domain.EventSummary, error) {
	return g.check(ctx, volunteerID, eventID)
}

func (g *CapacityGuard) TryReserve(ctx context.Context, volunteerID, eventID int64, comment string) (*domain.Registration, error) {
	done := g.export.Hold()
	defer done()
	unlock := g.locks.lock(eventID)
	defer unlock()

	reg, err := g.reserve(ctx, volunteerID, eventID, comment)
	if err != nil {
		return nil, err
	}

	g.logger.Info("registration created",
		logger.Int64("registration_id", reg.ID),
		logger.Int64("event_id", eventID),
		logger.Int64("volunteer_id", volunteerID),
	)

	// строка выгрузки пишется после коммита, но до снятия блокировок; ошибка не откатывает регистрацию
	g.export.RecordCreated(context.WithoutCancel(ctx), *reg)

	return reg, nil
}

// reserve expects the event lock to be held.
func (g *CapacityGuard) reserve(ctx context.Context, volunteerID, eventID int64, comment string) (*domain.Registration, error) {
	if _, err := g.check(ctx, volunteerID, eventID); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		VolunteerID: volunteerID,
		EventID:     eventID,
		Comment:     comment,
		CreatedAt:   g.now().UTC(),
	}
	if err := g.regRepo.Insert(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	return reg, nil
}

func (g *CapacityGuard) check(ctx context.Context, volunteerID, eventID int64) (*domain.EventSummary, error) {
	event, err := g.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.AcceptsSignups(g.now()) {
		return nil, domain.ErrRegistrationClosed
	}

	_, err = g.regRepo.GetByPair(ctx, volunteerID, eventID)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyRegistered
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return nil, fmt.Errorf("check registration: %w", err)
	}

	registered, err := g.regRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	if !event.Unlimited() && registered >= *event.Capacity {
		return nil, domain.ErrCapacityExceeded
	}

	summary := domain.NewEventSummary(*event, registered)
	return &summary, nil
}

func (g *CapacityGuard) Release(ctx context.Context, registrationID, requesterID int64) error {
	reg, err := g.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if reg.VolunteerID != requesterID {
		return domain.ErrForbidden
	}

	return g.release(ctx, reg)
}

func (g *CapacityGuard) ReleaseByEvent(ctx context.Context, volunteerID, eventID int64) error {
	reg, err := g.regRepo.GetByPair(ctx, volunteerID, eventID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	return g.release(ctx, reg)
}

func (g *CapacityGuard) AdminRelease(ctx context.Context, admin auth.Admin, eventID, volunteerID int64) error {
	if err := admin.Require(); err != nil {
		return err
	}

	reg, err := g.regRepo.GetByPair(ctx, volunteerID, eventID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if err = g.release(ctx, reg); err != nil {
		return err
	}

	g.logger.Info("registration released by admin",
		logger.Int64("admin_id", admin.ID()),
		logger.Int64("registration_id", reg.ID),
	)
	return nil
}

func (g *CapacityGuard) release(ctx context.Context, reg *domain.Registration) error {
	done := g.export.Hold()
	defer done()
	unlock := g.locks.lock(reg.EventID)
	defer unlock()

	if err := g.regRepo.DeleteByID(ctx, reg.ID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	g.logger.Info("registration released",
		logger.Int64("registration_id", reg.ID),
		logger.Int64("event_id", reg.EventID),
		logger.Int64("volunteer_id", reg.VolunteerID),
	)

	g.export.RecordCancelled(context.WithoutCancel(ctx), *reg)

	return nil
}

// порядок как в TryReserve: сначала выгрузка, потом мероприятие
func (g *CapacityGuard) withEventLock(eventID int64, fn func() error) error {
	done := g.export.Hold()
	defer done()
	unlock := g.locks.lock(eventID)
	defer unlock()
	return fn()
}
