package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/conversation"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/dispatch"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/intent"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
)

const cancelHint = "Для отмены отправьте /cancel"

var fieldLabels = map[string]string{
	"title":       "Название",
	"description": "Описание",
	"date":        "Дата",
	"time":        "Время",
	"location":    "Место",
	"capacity":    "Макс. участников",
	"full_name":   "ФИО",
	"group":       "Группа",
	"birth_date":  "Дата рождения",
	"phone":       "Телефон",
	"handle":      "Username",
	"comment":     "Комментарий",
	"profile":     "Данные профиля",
	"event":       "Данные мероприятия",
}

var fieldHints = map[string]string{
	"title":       "непустой текст",
	"description": "текст до 2000 символов, - чтобы очистить",
	"date":        "ГГГГ-ММ-ДД, например 2025-04-10",
	"time":        "ЧЧ:ММ, например 14:00",
	"location":    "непустой текст",
	"capacity":    "целое число, 0 без ограничений",
	"full_name":   "непустой текст",
	"group":       "непустой текст",
	"birth_date":  "ДД.ММ.ГГГГ, например 01.02.2003",
	"phone":       "номер телефона, например +79990001122",
	"handle":      "username, начинающийся с @",
	"comment":     "текст до 500 символов, - чтобы пропустить",
	"profile":     "5 значений через запятую",
	"event":       "строки вида «ключ: значение»",
}

const profileFormat = "Отправьте данные одним сообщением через запятую:\n\n" +
	"ФИО, Группа, Дата рождения (ДД.ММ.ГГГГ), Телефон, @username\n\n" +
	"Пример:\n" +
	"Иванова Анна, ИТ-21, 01.02.2003, +79990001122, @anna\n\n" +
	cancelHint

const newEventFormat = "📝 Добавление нового мероприятия\n\n" +
	"Отправьте данные строками «ключ: значение»:\n\n" +
	"Название: Уборка парка\n" +
	"Дата: 2025-04-10\n" +
	"Время: 14:00\n" +
	"Место: Центральный парк\n" +
	"Мест: 30\n" +
	"Описание: Общеуниверситетский субботник\n\n" +
	"📌 Мест: число или 0 без ограничений. Описание можно пропустить.\n" +
	cancelHint

// Renderer turns dispatch results into Telegram messages. Messages are sent
// as plain text, so user input needs no escaping.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(chatID int64, res dispatch.Result) []tgbotapi.Chattable {
	switch res.Kind {
	case dispatch.KindExport:
		file, _ := res.Data.(dispatch.ExportFile)
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Content})
		doc.Caption = "📥 Таблица регистраций"
		return []tgbotapi.Chattable{doc}
	default:
		text, kb := r.compose(res)
		msg := tgbotapi.NewMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		return []tgbotapi.Chattable{msg}
	}
}

func (r *Renderer) compose(res dispatch.Result) (string, *tgbotapi.InlineKeyboardMarkup) {
	switch res.Kind {
	case dispatch.KindMainMenu:
		m, _ := res.Data.(dispatch.Menu)
		return greeting(m.Volunteer) + "Выберите действие:", mainMenu(m.Admin)
	case dispatch.KindHelp:
		m, _ := res.Data.(dispatch.Menu)
		return helpText(m.Admin), keyboard(row(button("🏠 Главное меню", intent.MainMenu{})))
	case dispatch.KindPrompt:
		p, _ := res.Data.(dispatch.Prompt)
		text := promptText(p)
		if res.Outcome == domain.OutcomeProfileRequired {
			text = "Чтобы записаться, сначала заполните профиль.\n\n" + text
		}
		return text, nil
	case dispatch.KindInvalidInput:
		return invalidText(res.Err), nil
	case dispatch.KindAborted:
		st, _ := res.Data.(conversation.State)
		return abortedText(st), keyboard(row(button("🏠 Главное меню", intent.MainMenu{})))
	case dispatch.KindNothingToAbort:
		return "❌ Нечего отменять.", nil
	case dispatch.KindEventList:
		events, _ := res.Data.([]domain.EventSummary)
		return eventList(events)
	case dispatch.KindEventDetail:
		v, _ := res.Data.(dispatch.EventView)
		return eventDetail(v)
	case dispatch.KindRegistered:
		reg, _ := res.Data.(dispatch.Registered)
		return registeredText(reg), keyboard(
			row(button("📝 Мои записи", intent.MyRegistrations{})),
			row(button("🏠 Главное меню", intent.MainMenu{})),
		)
	case dispatch.KindReleased:
		return "✅ Запись отменена.", keyboard(
			row(button("📋 Мероприятия", intent.ListEvents{})),
			row(button("🏠 Главное меню", intent.MainMenu{})),
		)
	case dispatch.KindProfile:
		v, _ := res.Data.(*domain.Volunteer)
		return profileText(v), keyboard(
			row(button("✏️ Изменить данные", intent.EditProfile{})),
			row(button("🏠 Главное меню", intent.MainMenu{})),
		)
	case dispatch.KindProfileSaved:
		m, _ := res.Data.(dispatch.Menu)
		return "✅ Данные сохранены!\n\n" + profileText(m.Volunteer), mainMenu(m.Admin)
	case dispatch.KindMyRegistrations:
		regs, _ := res.Data.([]domain.VolunteerRegistration)
		return myRegistrations(regs)
	case dispatch.KindAdminPanel:
		return "👑 Админ-панель", adminPanel()
	case dispatch.KindAdminEventList:
		events, _ := res.Data.([]domain.EventSummary)
		return adminEventList(events), keyboard(
			row(button("➕ Добавить мероприятие", intent.AdminStartCreate{})),
			row(button("✏️ Редактировать", intent.AdminEditList{})),
			row(button("📊 Статистика", intent.AdminStats{})),
			row(button("🏠 В админ-панель", intent.AdminPanel{})),
		)
	case dispatch.KindAdminEditList:
		events, _ := res.Data.([]domain.EventSummary)
		return pickEvent(events, "✏️ Выберите мероприятие для редактирования:", func(id int64) intent.Intent {
			return intent.AdminShowEvent{EventID: id}
		}, intent.AdminListEvents{})
	case dispatch.KindParticipantsMenu:
		events, _ := res.Data.([]domain.EventSummary)
		return pickEvent(events, "👥 Выберите мероприятие:", func(id int64) intent.Intent {
			return intent.AdminParticipants{EventID: id}
		}, intent.AdminPanel{})
	case dispatch.KindAdminEvent, dispatch.KindEventUpdated:
		s, _ := res.Data.(*domain.EventSummary)
		text := adminEventText(s)
		if res.Kind == dispatch.KindEventUpdated || res.Outcome == domain.OutcomeAccepted {
			text = "✅ Изменения сохранены.\n\n" + text
		}
		return text, adminEventKeyboard(s)
	case dispatch.KindEventCreated:
		e, _ := res.Data.(*domain.Event)
		return createdText(e), keyboard(
			row(button("📝 Добавить еще", intent.AdminStartCreate{})),
			row(button("📋 Список мероприятий", intent.AdminListEvents{})),
			row(button("🏠 В админ-панель", intent.AdminPanel{})),
		)
	case dispatch.KindEventDeleted:
		return "🗑️ Мероприятие удалено.", keyboard(
			row(button("📋 Список мероприятий", intent.AdminListEvents{})),
			row(button("🏠 В админ-панель", intent.AdminPanel{})),
		)
	case dispatch.KindParticipants:
		p, _ := res.Data.(*domain.EventParticipants)
		text := participantsText(p)
		if res.Outcome == domain.OutcomeReleased {
			text = "✅ Запись снята.\n\n" + text
		}
		return text, participantsKeyboard(p)
	case dispatch.KindStats:
		s, _ := res.Data.(*domain.Stats)
		return statsText(s), keyboard(row(button("🏠 В админ-панель", intent.AdminPanel{})))
	case dispatch.KindReconciled:
		d, _ := res.Data.(domain.Divergence)
		return reconciledText(d), keyboard(row(button("🏠 В админ-панель", intent.AdminPanel{})))
	case dispatch.KindError:
		return errorText(res)
	default:
		return "Не понимаю. Откройте меню: /menu", keyboard(row(button("🏠 Главное меню", intent.MainMenu{})))
	}
}

func greeting(v *domain.Volunteer) string {
	if v == nil || v.FullName == "" {
		return "👋 Привет!\n\n"
	}
	return fmt.Sprintf("👋 Привет, %s!\n\n", v.FullName)
}

func helpText(admin bool) string {
	var b strings.Builder
	b.WriteString("ℹ️ Помощь\n\n")
	b.WriteString("/start - начать\n")
	b.WriteString("/menu - главное меню\n")
	b.WriteString("/events - мероприятия с открытой записью\n")
	b.WriteString("/my - мои записи\n")
	b.WriteString("/profile - мой профиль\n")
	b.WriteString("/cancel - отменить ввод\n")
	if admin {
		b.WriteString("\n👑 Администратору:\n")
		b.WriteString("/admin - админ-панель\n")
		b.WriteString("/addevent - добавить мероприятие\n")
		b.WriteString("/allevents - все мероприятия\n")
		b.WriteString("/participants_<id> - участники мероприятия\n")
		b.WriteString("/table - скачать таблицу\n")
		b.WriteString("/stats - статистика\n")
		b.WriteString("/reconcile - сверить таблицу с базой\n")
	}
	return b.String()
}

func promptText(p dispatch.Prompt) string {
	switch p.State.Kind {
	case conversation.AwaitingProfile:
		return "👤 Заполнение профиля\n\n" + profileFormat
	case conversation.AwaitingNewEvent:
		return newEventFormat
	case conversation.AwaitingEventFieldValue:
		f := string(p.State.Field)
		text := fmt.Sprintf("✏️ Новое значение поля «%s»", fieldLabels[f])
		if p.Event != nil {
			text += fmt.Sprintf(" для «%s»", p.Event.Event.Title)
		}
		return text + fmt.Sprintf("\n\nФормат: %s\n%s", fieldHints[f], cancelHint)
	case conversation.AwaitingRegistrationComment:
		text := "📝 Запись на мероприятие"
		if p.Event != nil {
			text = fmt.Sprintf("📝 Запись на «%s»\n%s", p.Event.Event.Title, seats(p.Event))
		}
		return text + "\n\nОставьте комментарий для организаторов или отправьте - (или /skip), чтобы пропустить.\n" + cancelHint
	default:
		return "Выберите действие: /menu"
	}
}

func invalidText(err error) string {
	var fe *validation.FieldError
	if !errors.As(err, &fe) {
		return "❌ Неверные данные. Попробуйте снова или отправьте /cancel."
	}
	label, ok := fieldLabels[fe.Field]
	if !ok {
		label = fe.Field
	}
	hint, ok := fieldHints[fe.Field]
	if !ok {
		hint = fe.Expected
	}
	return fmt.Sprintf("❌ Неверный формат: %s\nОжидается: %s\n\nПопробуйте снова или отправьте /cancel.", label, hint)
}

func abortedText(st conversation.State) string {
	switch st.Kind {
	case conversation.AwaitingNewEvent:
		return "✅ Добавление мероприятия отменено."
	case conversation.AwaitingProfile:
		return "✅ Заполнение данных отменено."
	case conversation.AwaitingRegistrationComment:
		return "✅ Запись отменена, вы не были зарегистрированы."
	case conversation.AwaitingEventFieldValue:
		return "✅ Редактирование отменено."
	default:
		return "✅ Действие отменено."
	}
}

func eventLine(s domain.EventSummary) string {
	return fmt.Sprintf("%s (%s %s)", s.Event.Title, s.Event.Date, s.Event.Time)
}

func seats(s *domain.EventSummary) string {
	if s.Event.Capacity == nil {
		return fmt.Sprintf("👥 Записано: %d (без ограничений)", s.Registered)
	}
	return fmt.Sprintf("👥 Записано: %d из %d, свободно: %d", s.Registered, *s.Event.Capacity, *s.Remaining)
}

func eventList(events []domain.EventSummary) (string, *tgbotapi.InlineKeyboardMarkup) {
	back := row(button("🏠 Главное меню", intent.MainMenu{}))
	if len(events) == 0 {
		return "📭 Сейчас нет мероприятий с открытой записью.", keyboard(back)
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(events)+1)
	for _, s := range events {
		rows = append(rows, row(button(eventLine(s), intent.ShowEvent{EventID: s.Event.ID})))
	}
	rows = append(rows, back)
	return "📋 Мероприятия с открытой записью:", keyboard(rows...)
}

func eventBody(s *domain.EventSummary) string {
	e := s.Event
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s\n\n", e.Title)
	fmt.Fprintf(&b, "📅 Дата: %s\n", e.Date)
	fmt.Fprintf(&b, "⏰ Время: %s\n", e.Time)
	if e.Location != "" {
		fmt.Fprintf(&b, "📍 Место: %s\n", e.Location)
	}
	b.WriteString(seats(s) + "\n")
	if e.Description != "" {
		fmt.Fprintf(&b, "\n📝 %s\n", e.Description)
	}
	return b.String()
}

func eventDetail(v dispatch.EventView) (string, *tgbotapi.InlineKeyboardMarkup) {
	if v.Summary == nil {
		return "❌ Мероприятие не найдено.", nil
	}
	text := eventBody(v.Summary)
	var rows [][]tgbotapi.InlineKeyboardButton
	switch {
	case v.Registered:
		text += "\n✅ Вы записаны."
		rows = append(rows, row(button("❌ Отменить запись", intent.CancelRegistration{EventID: v.Summary.Event.ID})))
	case v.Open:
		rows = append(rows, row(button("✅ Записаться", intent.Register{EventID: v.Summary.Event.ID})))
	default:
		text += "\n😔 Свободных мест нет."
	}
	rows = append(rows, row(button("🔙 К списку", intent.ListEvents{})))
	return text, keyboard(rows...)
}

func registeredText(r dispatch.Registered) string {
	if r.Event == nil {
		return "✅ Вы записаны!"
	}
	e := r.Event.Event
	text := fmt.Sprintf("✅ Вы записаны на «%s»!\n\n📅 %s %s", e.Title, e.Date, e.Time)
	if e.Location != "" {
		text += "\n📍 " + e.Location
	}
	if r.Registration != nil && r.Registration.Comment != "" {
		text += "\n💬 " + r.Registration.Comment
	}
	return text
}

func profileText(v *domain.Volunteer) string {
	if v == nil {
		return "👤 Профиль не заполнен."
	}
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("👤 Ваш профиль\n\nФИО: %s\nГруппа: %s\nДата рождения: %s\nТелефон: %s\nUsername: %s",
		orDash(v.FullName), orDash(v.Group), orDash(v.BirthDate), orDash(v.Phone), orDash(v.Handle))
}

func myRegistrations(regs []domain.VolunteerRegistration) (string, *tgbotapi.InlineKeyboardMarkup) {
	back := row(button("🏠 Главное меню", intent.MainMenu{}))
	if len(regs) == 0 {
		return "📭 У вас пока нет записей.", keyboard(row(button("📋 Мероприятия", intent.ListEvents{})), back)
	}

	var b strings.Builder
	b.WriteString("📝 Ваши записи:\n")
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(regs)+1)
	for i, r := range regs {
		fmt.Fprintf(&b, "\n%d. %s\n   📅 %s %s", i+1, r.Event.Title, r.Event.Date, r.Event.Time)
		if r.Event.Location != "" {
			fmt.Fprintf(&b, "\n   📍 %s", r.Event.Location)
		}
		rows = append(rows, row(button("❌ Отменить: "+r.Event.Title, intent.DropRegistration{RegistrationID: r.Registration.ID})))
	}
	rows = append(rows, back)
	return b.String(), keyboard(rows...)
}

func mainMenu(admin bool) *tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		row(button("📋 Мероприятия", intent.ListEvents{})),
		row(button("📝 Мои записи", intent.MyRegistrations{})),
		row(button("👤 Мой профиль", intent.ShowProfile{}), button("ℹ️ Помощь", intent.Help{})),
	}
	if admin {
		rows = append(rows, row(button("👑 Админ-панель", intent.AdminPanel{})))
	}
	return keyboard(rows...)
}

func adminPanel() *tgbotapi.InlineKeyboardMarkup {
	return keyboard(
		row(button("➕ Добавить мероприятие", intent.AdminStartCreate{})),
		row(button("📋 Все мероприятия", intent.AdminListEvents{})),
		row(button("📊 Статистика", intent.AdminStats{})),
		row(button("📥 Скачать таблицу", intent.AdminExport{})),
		row(button("👥 Участники мероприятий", intent.AdminParticipantsMenu{})),
		row(button("🔄 Сверить таблицу", intent.AdminReconcile{})),
	)
}

func capacityLabel(s domain.EventSummary) string {
	if s.Event.Capacity == nil {
		return fmt.Sprintf("%d/∞", s.Registered)
	}
	return fmt.Sprintf("%d/%d", s.Registered, *s.Event.Capacity)
}

func adminEventList(events []domain.EventSummary) string {
	if len(events) == 0 {
		return "📭 Мероприятий пока нет."
	}

	var b strings.Builder
	b.WriteString("📋 Все мероприятия:\n")
	for _, s := range events {
		status := "✅"
		if !s.Event.Active {
			status = "❌"
		} else if !s.Event.RegistrationOpen {
			status = "🔒"
		}
		fmt.Fprintf(&b, "\n%s 🆔 %d | %s\n   📅 %s %s | 👥 %s\n   /participants_%d\n",
			status, s.Event.ID, s.Event.Title, s.Event.Date, s.Event.Time, capacityLabel(s), s.Event.ID)
	}
	return b.String()
}

func pickEvent(events []domain.EventSummary, title string, pick func(int64) intent.Intent, back intent.Intent) (string, *tgbotapi.InlineKeyboardMarkup) {
	backRow := row(button("🔙 Назад", back))
	if len(events) == 0 {
		return "📭 Мероприятий нет.", keyboard(backRow)
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(events)+1)
	for _, s := range events {
		label := fmt.Sprintf("%s [%s]", eventLine(s), capacityLabel(s))
		rows = append(rows, row(button(label, pick(s.Event.ID))))
	}
	rows = append(rows, backRow)
	return title, keyboard(rows...)
}

func adminEventText(s *domain.EventSummary) string {
	if s == nil {
		return "❌ Мероприятие не найдено."
	}
	active := "активно"
	if !s.Event.Active {
		active = "скрыто"
	}
	reg := "открыта"
	if !s.Event.RegistrationOpen {
		reg = "закрыта"
	}
	return fmt.Sprintf("🆔 %d\n%s\nСтатус: %s, запись %s", s.Event.ID, eventBody(s), active, reg)
}

func adminEventKeyboard(s *domain.EventSummary) *tgbotapi.InlineKeyboardMarkup {
	if s == nil {
		return keyboard(row(button("🏠 В админ-панель", intent.AdminPanel{})))
	}
	id := s.Event.ID
	edit := func(f domain.EventField) tgbotapi.InlineKeyboardButton {
		return button("✏️ "+fieldLabels[string(f)], intent.AdminStartEdit{EventID: id, Field: f})
	}

	activeBtn := button("❌ Деактивировать", intent.AdminSetActive{EventID: id, Active: false})
	if !s.Event.Active {
		activeBtn = button("✅ Активировать", intent.AdminSetActive{EventID: id, Active: true})
	}
	openBtn := button("🔒 Закрыть запись", intent.AdminSetOpen{EventID: id, Open: false})
	if !s.Event.RegistrationOpen {
		openBtn = button("🔓 Открыть запись", intent.AdminSetOpen{EventID: id, Open: true})
	}

	return keyboard(
		row(edit(domain.FieldTitle), edit(domain.FieldDescription)),
		row(edit(domain.FieldDate), edit(domain.FieldTime)),
		row(edit(domain.FieldLocation), edit(domain.FieldCapacity)),
		row(activeBtn, openBtn),
		row(button("👥 Участники", intent.AdminParticipants{EventID: id})),
		row(button("🗑️ Удалить", intent.AdminDelete{EventID: id})),
		row(button("🔙 К списку", intent.AdminEditList{}), button("🏠 В админ-панель", intent.AdminPanel{})),
	)
}

func createdText(e *domain.Event) string {
	if e == nil {
		return "✅ Мероприятие добавлено!"
	}
	capacity := "не ограничено"
	if e.Capacity != nil {
		capacity = fmt.Sprint(*e.Capacity)
	}
	text := fmt.Sprintf("✅ Мероприятие добавлено!\n\n🎯 Название: %s\n📅 Дата: %s\n⏰ Время: %s\n📍 Место: %s\n👥 Макс. участников: %s\n",
		e.Title, e.Date, e.Time, e.Location, capacity)
	if e.Description != "" {
		text += "📝 Описание: " + e.Description + "\n"
	}
	return text + fmt.Sprintf("\n🆔 ID мероприятия: %d", e.ID)
}

func participantsText(p *domain.EventParticipants) string {
	if p == nil {
		return "❌ Мероприятие не найдено."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "👥 Участники «%s» (%s %s)\n%s\n", p.Summary.Event.Title, p.Summary.Event.Date, p.Summary.Event.Time, seats(&p.Summary))
	if len(p.Participants) == 0 {
		b.WriteString("\nПока никто не записался.")
		return b.String()
	}
	for i, pt := range p.Participants {
		v := pt.Volunteer
		fmt.Fprintf(&b, "\n%d. %s, %s\n   📞 %s", i+1, v.FullName, v.Group, v.Phone)
		if v.Handle != "" {
			fmt.Fprintf(&b, " %s", v.Handle)
		}
		if pt.Registration.Comment != "" {
			fmt.Fprintf(&b, "\n   💬 %s", pt.Registration.Comment)
		}
	}
	return b.String()
}

func participantsKeyboard(p *domain.EventParticipants) *tgbotapi.InlineKeyboardMarkup {
	if p == nil {
		return keyboard(row(button("🏠 В админ-панель", intent.AdminPanel{})))
	}
	id := p.Summary.Event.ID
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(p.Participants)+1)
	for _, pt := range p.Participants {
		rows = append(rows, row(button("❌ Снять: "+pt.Volunteer.FullName,
			intent.AdminRelease{EventID: id, VolunteerID: pt.Volunteer.ID})))
	}
	rows = append(rows, row(button("🔙 К мероприятию", intent.AdminShowEvent{EventID: id}), button("🏠 В админ-панель", intent.AdminPanel{})))
	return keyboard(rows...)
}

func statsText(s *domain.Stats) string {
	if s == nil {
		return "📊 Статистика недоступна."
	}
	var b strings.Builder
	b.WriteString("📊 Статистика\n\n")
	fmt.Fprintf(&b, "👥 Волонтеров: %d\n", s.Volunteers)
	fmt.Fprintf(&b, "📅 Мероприятий: %d\n", s.Events)
	fmt.Fprintf(&b, "📝 Регистраций: %d\n", s.Registrations)
	fmt.Fprintf(&b, "📄 Строк в таблице: %d\n", s.ExportRows)
	if len(s.TopEvents) > 0 {
		b.WriteString("\n🏆 Популярные мероприятия:\n")
		for i, e := range s.TopEvents {
			fmt.Fprintf(&b, "%d. %s (%s) - %d\n", i+1, e.Title, e.Date, e.Registrations)
		}
	}
	return b.String()
}

func reconciledText(d domain.Divergence) string {
	if d.Empty() {
		return "✅ Таблица совпадает с базой."
	}
	return fmt.Sprintf("⚠️ Найдены расхождения, таблица дополнена.\nДобавлено записей: %d\nОтмечено отмен: %d",
		len(d.MissingCreated), len(d.MissingCancelled))
}

func errorText(res dispatch.Result) (string, *tgbotapi.InlineKeyboardMarkup) {
	back := keyboard(row(button("🏠 Главное меню", intent.MainMenu{})))
	switch res.Outcome {
	case domain.OutcomeForbidden:
		return "⛔ У вас нет прав доступа.", nil
	case domain.OutcomeEventNotFound:
		return "❌ Мероприятие не найдено.", back
	case domain.OutcomeAlreadyRegistered:
		return "ℹ️ Вы уже записаны на это мероприятие.", keyboard(row(button("📝 Мои записи", intent.MyRegistrations{})))
	case domain.OutcomeRegistrationClosed:
		return "🔒 Запись на это мероприятие закрыта.", back
	case domain.OutcomeCapacityExceeded:
		return "😔 К сожалению, все места уже заняты.", keyboard(row(button("📋 Другие мероприятия", intent.ListEvents{})))
	case domain.OutcomeNotFound:
		return "❌ Запись не найдена.", back
	case domain.OutcomeRefused:
		ref, _ := res.Data.(dispatch.Refusal)
		return "⚠️ На мероприятие есть записи. Удалить его вместе с ними?", keyboard(
			row(button("🗑️ Удалить вместе с записями", intent.AdminDelete{EventID: ref.EventID, Cascade: true})),
			row(button("🔙 Отмена", intent.AdminShowEvent{EventID: ref.EventID})),
		)
	case domain.OutcomeInvalid:
		return invalidText(res.Err), nil
	default:
		return "⚠️ Произошла ошибка. Попробуйте позже.", back
	}
}

func button(text string, in intent.Intent) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(truncate(text, 60), intent.MustSelector(in))
}

func row(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

func keyboard(rows ...[]tgbotapi.InlineKeyboardButton) *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
