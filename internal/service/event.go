package service

import (
	"context"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
	now  Clock
}

func NewEventService(repo ports.EventRepo, now Clock) *EventService {
	return &EventService{
		repo: repo,
		now:  now,
	}
}

// ListOpen returns events a volunteer can sign up for, soonest first.
func (s *EventService) ListOpen(ctx context.Context) ([]domain.EventSummary, error) {
	events, err := s.repo.List(ctx, domain.EventFilter{OpenOnly: true, FromDate: s.today()})
	if err != nil {
		return nil, fmt.Errorf("list open events: %w", err)
	}
	return events, nil
}

func (s *EventService) ListAll(ctx context.Context) ([]domain.EventSummary, error) {
	events, err := s.repo.List(ctx, domain.EventFilter{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]domain.EventSummary, error) {
	events, err := s.repo.List(ctx, domain.EventFilter{FromDate: s.today()})
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *EventService) Details(ctx context.Context, id int64) (*domain.EventSummary, error) {
	return s.repo.GetSummary(ctx, id)
}

// неактивные мероприятия волонтерам не показываем
func (s *EventService) PublicDetails(ctx context.Context, id int64) (*domain.EventSummary, error) {
	summary, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	if !summary.Event.Active {
		return nil, domain.ErrEventNotFound
	}
	return summary, nil
}

func (s *EventService) today() string {
	return s.now().Format(domain.DateLayout)
}
