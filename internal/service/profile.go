package service

import (
	"context"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type ProfileService struct {
	repo    ports.VolunteerRepo
	regRepo ports.RegistrationRepo
	logger  logger.Logger
}

func NewProfileService(repo ports.VolunteerRepo, regRepo ports.RegistrationRepo, logger logger.Logger) *ProfileService {
	return &ProfileService{
		repo:    repo,
		regRepo: regRepo,
		logger:  logger,
	}
}

func (s *ProfileService) Touch(ctx context.Context, id int64, displayName string) (*domain.Volunteer, error) {
	if displayName == "" {
		displayName = fmt.Sprintf("id%d", id)
	}

	v, err := s.repo.Ensure(ctx, id, displayName)
	if err != nil {
		return nil, fmt.Errorf("ensure volunteer: %w", err)
	}
	return v, nil
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.Volunteer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProfileService) Complete(ctx context.Context, id int64, in domain.ProfileInput) (*domain.Volunteer, error) {
	in, err := validation.Profile(in)
	if err != nil {
		return nil, err
	}

	if err = s.repo.SaveProfile(ctx, id, in); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("profile completed", logger.Int64("volunteer_id", id))

	return s.repo.GetByID(ctx, id)
}

// RequireComplete returns domain.ErrProfileIncomplete until every required
// profile field is filled in.
func (s *ProfileService) RequireComplete(ctx context.Context, id int64) (*domain.Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Complete() {
		return nil, domain.ErrProfileIncomplete
	}
	return v, nil
}

func (s *ProfileService) Registrations(ctx context.Context, id int64) ([]domain.VolunteerRegistration, error) {
	regs, err := s.regRepo.ListByVolunteer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
