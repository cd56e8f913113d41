package ports

import (
	"context"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetSummary(ctx context.Context, id int64) (*domain.EventSummary, error)
	List(ctx context.Context, f domain.EventFilter) ([]domain.EventSummary, error)
	UpdateField(ctx context.Context, id int64, f domain.EventField, value any) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetRegistrationOpen(ctx context.Context, id int64, open bool) error
	Delete(ctx context.Context, id int64) error
	DeleteCascade(ctx context.Context, id int64) ([]domain.Registration, error)
}
