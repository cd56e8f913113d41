package ports

import (
	"context"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type RegistrationRepo interface {
	Insert(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int64) (*domain.Registration, error)
	GetByPair(ctx context.Context, volunteerID, eventID int64) (*domain.Registration, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByPair(ctx context.Context, volunteerID, eventID int64) error
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error)
	ListByVolunteer(ctx context.Context, volunteerID int64) ([]domain.VolunteerRegistration, error)
}

type StatsRepo interface {
	Stats(ctx context.Context, top int) (*domain.Stats, error)
}
