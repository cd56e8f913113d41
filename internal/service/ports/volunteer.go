package ports

import (
	"context"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type VolunteerRepo interface {
	Ensure(ctx context.Context, id int64, fullName string) (*domain.Volunteer, error)
	SaveProfile(ctx context.Context, id int64, in domain.ProfileInput) error
	GetByID(ctx context.Context, id int64) (*domain.Volunteer, error)
}
