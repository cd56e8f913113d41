package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/conversation"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/dispatch"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func renderOne(t *testing.T, res dispatch.Result) tgbotapi.MessageConfig {
	t.Helper()
	out := NewRenderer().Render(100, res)
	require.Len(t, out, 1)
	msg, ok := out[0].(tgbotapi.MessageConfig)
	require.True(t, ok, "expected a text message, got %T", out[0])
	assert.Equal(t, int64(100), msg.ChatID)
	return msg
}

func callbacks(msg tgbotapi.MessageConfig) []string {
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		return nil
	}
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				out = append(out, *b.CallbackData)
			}
		}
	}
	return out
}

func summary(id int64, capacity *int, registered int) *domain.EventSummary {
	s := domain.NewEventSummary(domain.Event{
		ID: id, Title: "Уборка парка", Date: "2025-04-10", Time: "14:00", Location: "Парк",
		Capacity: capacity, Active: true, RegistrationOpen: true,
	}, registered)
	return &s
}

func TestRender_MainMenu_AdminButton(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindMainMenu, Data: dispatch.Menu{Admin: true}})
	assert.Contains(t, callbacks(msg), "adm")

	msg = renderOne(t, dispatch.Result{Kind: dispatch.KindMainMenu, Data: dispatch.Menu{}})
	assert.NotContains(t, callbacks(msg), "adm")
	assert.Contains(t, callbacks(msg), "events")
}

func TestRender_EventDetail(t *testing.T) {
	open := renderOne(t, dispatch.Result{Kind: dispatch.KindEventDetail, Data: dispatch.EventView{Summary: summary(7, intPtr(10), 3), Open: true}})
	assert.Contains(t, open.Text, "Записано: 3 из 10")
	assert.Contains(t, callbacks(open), "reg:7")

	registered := renderOne(t, dispatch.Result{Kind: dispatch.KindEventDetail, Data: dispatch.EventView{Summary: summary(7, nil, 3), Registered: true}})
	assert.Contains(t, registered.Text, "без ограничений")
	assert.Contains(t, callbacks(registered), "unreg:7")
	assert.NotContains(t, callbacks(registered), "reg:7")
}

func TestRender_MyRegistrations_CancelByRegistrationID(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindMyRegistrations, Data: []domain.VolunteerRegistration{{
		Registration: domain.Registration{ID: 31, EventID: 7},
		Event:        summary(7, nil, 1).Event,
	}}})

	assert.Contains(t, msg.Text, "Уборка парка")
	assert.Contains(t, callbacks(msg), "drop:31")
	assert.NotContains(t, callbacks(msg), "unreg:7")
}

func TestRender_Prompts(t *testing.T) {
	profile := renderOne(t, dispatch.Result{
		Kind:    dispatch.KindPrompt,
		Outcome: domain.OutcomeProfileRequired,
		Data:    dispatch.Prompt{State: conversation.ProfileState()},
	})
	assert.Contains(t, profile.Text, "сначала заполните профиль")
	assert.Contains(t, profile.Text, "ДД.ММ.ГГГГ")

	comment := renderOne(t, dispatch.Result{
		Kind: dispatch.KindPrompt,
		Data: dispatch.Prompt{State: conversation.CommentState(7), Event: summary(7, intPtr(10), 3)},
	})
	assert.Contains(t, comment.Text, "Уборка парка")
	assert.Contains(t, comment.Text, "/skip")
}

func TestRender_InvalidInputNamesField(t *testing.T) {
	err := &validation.FieldError{Field: "birth_date", Expected: "DD.MM.YYYY"}
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindInvalidInput, Outcome: domain.OutcomeInvalid, Err: err})
	assert.Contains(t, msg.Text, "Дата рождения")
	assert.Contains(t, msg.Text, "/cancel")
}

func TestRender_Aborted(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindAborted, Data: conversation.NewEventState()})
	assert.Equal(t, "✅ Добавление мероприятия отменено.", msg.Text)

	msg = renderOne(t, dispatch.Result{Kind: dispatch.KindNothingToAbort})
	assert.Equal(t, "❌ Нечего отменять.", msg.Text)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		want    string
	}{
		{domain.OutcomeForbidden, "⛔ У вас нет прав доступа."},
		{domain.OutcomeEventNotFound, "❌ Мероприятие не найдено."},
		{domain.OutcomeCapacityExceeded, "все места уже заняты"},
		{domain.OutcomeRegistrationClosed, "закрыта"},
		{domain.OutcomeAlreadyRegistered, "уже записаны"},
		{domain.OutcomeFailed, "Произошла ошибка"},
	}
	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			msg := renderOne(t, dispatch.Result{Kind: dispatch.KindError, Outcome: tt.outcome, Err: errors.New("x")})
			assert.Contains(t, msg.Text, tt.want)
		})
	}
}

func TestRender_RefusedDeleteOffersCascade(t *testing.T) {
	msg := renderOne(t, dispatch.Result{
		Kind:    dispatch.KindError,
		Outcome: domain.OutcomeRefused,
		Err:     domain.ErrEventHasRegistrations,
		Data:    dispatch.Refusal{EventID: 5},
	})
	assert.Contains(t, callbacks(msg), "adm:del:5:1")
	assert.Contains(t, callbacks(msg), "adm:ev:5")
}

func TestRender_AdminEventToggles(t *testing.T) {
	s := summary(5, intPtr(10), 0)
	s.Event.Active = false
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindAdminEvent, Data: s})

	cbs := callbacks(msg)
	assert.Contains(t, cbs, "adm:active:5:1")
	assert.Contains(t, cbs, "adm:open:5:0")
	assert.Contains(t, cbs, "adm:field:5:capacity")
	assert.Contains(t, cbs, "adm:del:5:0")
}

func TestRender_Participants(t *testing.T) {
	p := &domain.EventParticipants{
		Summary: *summary(5, intPtr(10), 1),
		Participants: []domain.Participant{{
			Registration: domain.Registration{ID: 1, VolunteerID: 42, EventID: 5, Comment: "после пар"},
			Volunteer:    domain.Volunteer{ID: 42, FullName: "Иванова Анна", Group: "ИТ-21", Phone: "+79990001122", Handle: "@anna"},
		}},
	}
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindParticipants, Outcome: domain.OutcomeReleased, Data: p})

	assert.Contains(t, msg.Text, "Запись снята")
	assert.Contains(t, msg.Text, "Иванова Анна")
	assert.Contains(t, msg.Text, "после пар")
	assert.Contains(t, callbacks(msg), "adm:rel:5:42")
}

func TestRender_Stats(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindStats, Data: &domain.Stats{
		Volunteers: 3, Events: 2, Registrations: 4, ExportRows: 6,
		TopEvents: []domain.EventCount{{EventID: 1, Title: "Уборка", Date: "2025-04-10", Registrations: 4}},
	}})
	assert.Contains(t, msg.Text, "Волонтеров: 3")
	assert.Contains(t, msg.Text, "1. Уборка (2025-04-10) - 4")
}

func TestRender_Reconciled(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindReconciled, Data: domain.Divergence{}})
	assert.Contains(t, msg.Text, "совпадает")

	msg = renderOne(t, dispatch.Result{Kind: dispatch.KindReconciled, Data: domain.Divergence{MissingCreated: []int64{1, 2}}})
	assert.Contains(t, msg.Text, "Добавлено записей: 2")
}

func TestRender_ExportIsDocument(t *testing.T) {
	out := NewRenderer().Render(100, dispatch.Result{
		Kind: dispatch.KindExport,
		Data: dispatch.ExportFile{Name: "registrations.csv", Content: []byte("a,b\n")},
	})
	require.Len(t, out, 1)

	doc, ok := out[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "registrations.csv", file.Name)
	assert.Equal(t, []byte("a,b\n"), file.Bytes)
}

func TestRender_Unknown(t *testing.T) {
	msg := renderOne(t, dispatch.Result{Kind: dispatch.KindUnknown})
	assert.Contains(t, msg.Text, "/menu")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "абв…", truncate("абвгдеж", 4))
}
