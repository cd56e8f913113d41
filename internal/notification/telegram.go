package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// maxListedIDs bounds how many registration ids one alert spells out.
const maxListedIDs = 20

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier alerts the operators (the admin chats) about export
// failures and ledger divergence. A nil sender disables it.
type TelegramNotifier struct {
	bot      Sender
	adminIDs []int64
	logger   logger.Logger
}

func NewTelegramNotifier(bot Sender, adminIDs []int64, logger logger.Logger) *TelegramNotifier {
	if bot == nil {
		logger.Warn("telegram bot is not configured, operator alerts disabled")
	}
	return &TelegramNotifier{bot: bot, adminIDs: adminIDs, logger: logger}
}

func (n *TelegramNotifier) NotifyExportFailure(ctx context.Context, op string, registrationIDs []int64, err error) {
	text := fmt.Sprintf(
		"⚠️ Не удалось обновить таблицу регистраций\n\n"+"Операция: %s\n"+"Регистрации: %s\n"+"Ошибка: %v\n\n"+"Запустите /reconcile после устранения причины.",
		op, formatIDs(registrationIDs), err,
	)
	n.broadcast(ctx, text)
}

func (n *TelegramNotifier) NotifyDivergence(ctx context.Context, d domain.Divergence) {
	if d.Empty() {
		return
	}
	text := fmt.Sprintf(
		"⚠️ Таблица расходится с базой\n\n"+"Нет строки о записи: %s\n"+"Нет строки об отмене: %s",
		formatIDs(d.MissingCreated), formatIDs(d.MissingCancelled),
	)
	n.broadcast(ctx, text)
}

func (n *TelegramNotifier) broadcast(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if len(n.adminIDs) == 0 {
		n.logger.Debug("notification skipped (no admins)", logger.String("text", text))
		return
	}

	for _, chatID := range n.adminIDs {
		if err := ctx.Err(); err != nil {
			n.logger.Debug("notification skipped (context cancelled)",
				logger.Int64("chat_id", chatID),
			)
			return
		}

		if _, err := n.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			n.logger.Error("failed to send telegram notification",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func formatIDs(ids []int64) string {
	if len(ids) == 0 {
		return "-"
	}
	shown := ids
	if len(shown) > maxListedIDs {
		shown = shown[:maxListedIDs]
	}
	parts := make([]string, len(shown))
	for i, id := range shown {
		parts[i] = fmt.Sprint(id)
	}
	out := strings.Join(parts, ", ")
	if len(ids) > len(shown) {
		out += fmt.Sprintf(" и еще %d", len(ids)-len(shown))
	}
	return out
}
