// Package intent is the closed set of things a chat user can ask for.
// Transports parse raw commands, button payloads and free text into an
// Intent once; the core never sees raw strings.
package intent

import "github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"

type Intent interface {
	isIntent()
}

// Action is one request from a transport identity.
type Action struct {
	Identity    int64
	DisplayName string
	Intent      Intent
}

type (
	Start           struct{}
	Help            struct{}
	MainMenu        struct{}
	Abort           struct{}
	ListEvents      struct{}
	ShowProfile     struct{}
	EditProfile     struct{}
	MyRegistrations struct{}

	ShowEvent          struct{ EventID int64 }
	Register           struct{ EventID int64 }
	CancelRegistration struct{ EventID int64 }
	DropRegistration   struct{ RegistrationID int64 }

	// Text is free text, consumed by whatever flow is active.
	Text struct{ Body string }

	Unknown struct{ Raw string }
)

type (
	AdminPanel            struct{}
	AdminListEvents       struct{}
	AdminEditList         struct{}
	AdminStartCreate      struct{}
	AdminParticipantsMenu struct{}
	AdminStats            struct{}
	AdminExport           struct{}
	AdminReconcile        struct{}

	AdminShowEvent    struct{ EventID int64 }
	AdminParticipants struct{ EventID int64 }

	AdminStartEdit struct {
		EventID int64
		Field   domain.EventField
	}
	AdminSetActive struct {
		EventID int64
		Active  bool
	}
	AdminSetOpen struct {
		EventID int64
		Open    bool
	}
	AdminDelete struct {
		EventID int64
		Cascade bool
	}
	AdminRelease struct {
		EventID     int64
		VolunteerID int64
	}
)

func (Start) isIntent()              {}
func (Help) isIntent()               {}
func (MainMenu) isIntent()           {}
func (Abort) isIntent()              {}
func (ListEvents) isIntent()         {}
func (ShowProfile) isIntent()        {}
func (EditProfile) isIntent()        {}
func (MyRegistrations) isIntent()    {}
func (ShowEvent) isIntent()          {}
func (Register) isIntent()           {}
func (CancelRegistration) isIntent() {}
func (DropRegistration) isIntent()   {}
func (Text) isIntent()               {}
func (Unknown) isIntent()            {}

func (AdminPanel) isIntent()            {}
func (AdminListEvents) isIntent()       {}
func (AdminEditList) isIntent()         {}
func (AdminStartCreate) isIntent()      {}
func (AdminParticipantsMenu) isIntent() {}
func (AdminStats) isIntent()            {}
func (AdminExport) isIntent()           {}
func (AdminReconcile) isIntent()        {}
func (AdminShowEvent) isIntent()        {}
func (AdminParticipants) isIntent()     {}
func (AdminStartEdit) isIntent()        {}
func (AdminSetActive) isIntent()        {}
func (AdminSetOpen) isIntent()          {}
func (AdminDelete) isIntent()           {}
func (AdminRelease) isIntent()          {}

// IsAdmin reports whether in needs the admin capability.
func IsAdmin(in Intent) bool {
	switch in.(type) {
	case AdminPanel, AdminListEvents, AdminEditList, AdminStartCreate,
		AdminParticipantsMenu, AdminStats, AdminExport, AdminReconcile,
		AdminShowEvent, AdminParticipants, AdminStartEdit, AdminSetActive,
		AdminSetOpen, AdminDelete, AdminRelease:
		return true
	default:
		return false
	}
}
