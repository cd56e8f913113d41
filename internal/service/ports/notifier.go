package ports

import (
	"context"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

// OperatorNotifier alerts operators about conditions that need a human.
type OperatorNotifier interface {
	NotifyExportFailure(ctx context.Context, op string, registrationIDs []int64, err error)
	NotifyDivergence(ctx context.Context, d domain.Divergence)
}
