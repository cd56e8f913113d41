package dispatch

import (
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/conversation"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type Kind string

const (
	KindMainMenu        Kind = "main_menu"
	KindHelp            Kind = "help"
	KindPrompt          Kind = "prompt"
	KindInvalidInput    Kind = "invalid_input"
	KindAborted         Kind = "aborted"
	KindNothingToAbort  Kind = "nothing_to_abort"
	KindEventList       Kind = "event_list"
	KindEventDetail     Kind = "event_detail"
	KindRegistered      Kind = "registered"
	KindReleased        Kind = "released"
	KindProfile         Kind = "profile"
	KindProfileSaved    Kind = "profile_saved"
	KindMyRegistrations Kind = "my_registrations"

	KindAdminPanel       Kind = "admin_panel"
	KindAdminEventList   Kind = "admin_event_list"
	KindAdminEditList    Kind = "admin_edit_list"
	KindAdminEvent       Kind = "admin_event"
	KindEventCreated     Kind = "event_created"
	KindEventUpdated     Kind = "event_updated"
	KindEventDeleted     Kind = "event_deleted"
	KindParticipantsMenu Kind = "participants_menu"
	KindParticipants     Kind = "participants"
	KindStats            Kind = "stats"
	KindExport           Kind = "export"
	KindReconciled       Kind = "reconciled"

	KindError   Kind = "error"
	KindUnknown Kind = "unknown"
)

// Result is what the core hands back to a transport. Data holds the typed
// payload for Kind; on KindError, Outcome classifies Err.
type Result struct {
	Kind    Kind
	Outcome domain.Outcome
	Err     error
	Data    any
}

type Menu struct {
	Volunteer *domain.Volunteer
	Admin     bool
}

// Prompt describes the input being awaited. Event is set for field edits
// and registration comments.
type Prompt struct {
	State conversation.State
	Event *domain.EventSummary
}

type EventView struct {
	Summary    *domain.EventSummary
	Registered bool
	Open       bool
}

type Registered struct {
	Registration *domain.Registration
	Event        *domain.EventSummary
}

// отказ в удалении: транспорт предлагает каскад
type Refusal struct {
	EventID int64
}

type ExportFile struct {
	Name    string
	Content []byte
}
