package service

import (
	"context"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/wb-go/wbf/logger"
)

// AdminService holds every event mutation. Each method takes an auth.Admin,
// which only auth.Authorizer.Verify can produce.
type AdminService struct {
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	guard     *CapacityGuard
	export    ports.ExportRecorder
	logger    logger.Logger
}

func NewAdminService(
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	guard *CapacityGuard,
	export ports.ExportRecorder,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		guard:     guard,
		export:    export,
		logger:    logger,
	}
}

func (s *AdminService) CreateEvent(ctx context.Context, admin auth.Admin, in domain.EventInput) (*domain.Event, error) {
	if err := admin.Require(); err != nil {
		return nil, err
	}

	in, err := validation.Event(in)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:            in.Title,
		Description:      in.Description,
		Date:             in.Date,
		Time:             in.Time,
		Location:         in.Location,
		Capacity:         in.CapacityPtr(),
		Active:           true,
		RegistrationOpen: true,
	}
	if err = s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.Int64("event_id", event.ID),
		logger.Int64("admin_id", admin.ID()),
		logger.String("title", event.Title),
	)

	return event, nil
}

// снижение лимита ниже текущего числа записей существующие записи не трогает
func (s *AdminService) UpdateEventField(ctx context.Context, admin auth.Admin, id int64, f domain.EventField, raw string) error {
	if err := admin.Require(); err != nil {
		return err
	}

	value, err := validation.EventFieldValue(f, raw)
	if err != nil {
		return err
	}

	update := func() error { return s.eventRepo.UpdateField(ctx, id, f, value) }
	if f == domain.FieldCapacity {
		err = s.guard.withEventLock(id, update)
	} else {
		err = update()
	}
	if err != nil {
		return fmt.Errorf("update event %s: %w", f, err)
	}

	s.logger.Info("event updated",
		logger.Int64("event_id", id),
		logger.Int64("admin_id", admin.ID()),
		logger.String("field", string(f)),
	)
	return nil
}

func (s *AdminService) SetActive(ctx context.Context, admin auth.Admin, id int64, active bool) error {
	if err := admin.Require(); err != nil {
		return err
	}

	if err := s.eventRepo.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set active: %w", err)
	}

	s.logger.Info("event visibility changed",
		logger.Int64("event_id", id),
		logger.Int64("admin_id", admin.ID()),
		logger.Any("active", active),
	)
	return nil
}

func (s *AdminService) SetRegistrationOpen(ctx context.Context, admin auth.Admin, id int64, open bool) error {
	if err := admin.Require(); err != nil {
		return err
	}

	if err := s.eventRepo.SetRegistrationOpen(ctx, id, open); err != nil {
		return fmt.Errorf("set registration open: %w", err)
	}

	s.logger.Info("event registration toggled",
		logger.Int64("event_id", id),
		logger.Int64("admin_id", admin.ID()),
		logger.Any("open", open),
	)
	return nil
}

// DeleteEvent refuses with domain.ErrEventHasRegistrations unless cascade
// is set. A cascading delete removes the registrations and the event in one
// transaction, then purges their export rows.
func (s *AdminService) DeleteEvent(ctx context.Context, admin auth.Admin, id int64, cascade bool) error {
	if err := admin.Require(); err != nil {
		return err
	}

	if !cascade {
		if err := s.eventRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		s.logger.Info("event deleted",
			logger.Int64("event_id", id),
			logger.Int64("admin_id", admin.ID()),
		)
		return nil
	}

	var removed []domain.Registration
	err := s.guard.withEventLock(id, func() error {
		var err error
		removed, err = s.eventRepo.DeleteCascade(ctx, id)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(removed))
		for _, r := range removed {
			ids = append(ids, r.ID)
		}
		s.export.Purge(context.WithoutCancel(ctx), ids)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete event cascade: %w", err)
	}

	s.logger.Info("event deleted with registrations",
		logger.Int64("event_id", id),
		logger.Int64("admin_id", admin.ID()),
		logger.Int("registrations", len(removed)),
	)
	return nil
}

func (s *AdminService) Participants(ctx context.Context, admin auth.Admin, id int64) (*domain.EventParticipants, error) {
	if err := admin.Require(); err != nil {
		return nil, err
	}

	summary, err := s.eventRepo.GetSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	participants, err := s.regRepo.ListParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	return &domain.EventParticipants{Summary: *summary, Participants: participants}, nil
}

func (s *AdminService) ReleaseRegistration(ctx context.Context, admin auth.Admin, eventID, volunteerID int64) error {
	return s.guard.AdminRelease(ctx, admin, eventID, volunteerID)
}
