package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/intent"
)

// Incoming is one update reduced to what the core and the reply need.
type Incoming struct {
	Action     intent.Action
	ChatID     int64
	CallbackID string
}

// ParseUpdate turns a message or a button press into an action. Updates
// without a sender or text are skipped.
func ParseUpdate(u tgbotapi.Update) (Incoming, bool) {
	switch {
	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		if q.From == nil || q.Message == nil || q.Message.Chat == nil {
			return Incoming{}, false
		}
		in, err := intent.ParseSelector(q.Data)
		if err != nil {
			in = intent.Unknown{Raw: q.Data}
		}
		return Incoming{
			Action:     intent.Action{Identity: q.From.ID, DisplayName: displayName(q.From), Intent: in},
			ChatID:     q.Message.Chat.ID,
			CallbackID: q.ID,
		}, true
	case u.Message != nil:
		m := u.Message
		if m.From == nil || m.Chat == nil || m.Text == "" {
			return Incoming{}, false
		}
		return Incoming{
			Action: intent.Action{Identity: m.From.ID, DisplayName: displayName(m.From), Intent: intent.ParseMessage(m.Text)},
			ChatID: m.Chat.ID,
		}, true
	default:
		return Incoming{}, false
	}
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName + " " + u.LastName))
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return ""
}
