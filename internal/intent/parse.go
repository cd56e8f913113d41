package intent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

var ErrBadSelector = errors.New("malformed selector")

// callback_data в Telegram ограничен 64 байтами
const maxSelectorLen = 64

const participantsPrefix = "/participants_"

// ParseCommand parses a slash command. Commands that only make sense inside
// a flow, such as /skip, come back as Text so the flow can consume them.
func ParseCommand(text string) Intent {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Text{Body: text}
	}

	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	cmd = strings.ToLower(cmd)

	if id, ok := strings.CutPrefix(cmd, participantsPrefix); ok {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil || n <= 0 {
			return Unknown{Raw: text}
		}
		return AdminParticipants{EventID: n}
	}

	switch cmd {
	case "/start":
		return Start{}
	case "/help":
		return Help{}
	case "/menu":
		return MainMenu{}
	case "/cancel", "/abort":
		return Abort{}
	case "/events":
		return ListEvents{}
	case "/profile":
		return ShowProfile{}
	case "/my":
		return MyRegistrations{}
	case "/skip":
		return Text{Body: cmd}
	case "/admin":
		return AdminPanel{}
	case "/addevent":
		return AdminStartCreate{}
	case "/allevents":
		return AdminListEvents{}
	case "/participants":
		return AdminParticipantsMenu{}
	case "/table", "/export":
		return AdminExport{}
	case "/stats":
		return AdminStats{}
	case "/reconcile":
		return AdminReconcile{}
	default:
		return Unknown{Raw: text}
	}
}

// ParseMessage routes slash commands to ParseCommand and everything else to
// Text.
func ParseMessage(text string) Intent {
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return ParseCommand(text)
	}
	return Text{Body: text}
}

// Selector encodes in as a compact button payload. Intents that carry free
// text have no selector.
func Selector(in Intent) (string, error) {
	var s string
	switch v := in.(type) {
	case MainMenu:
		s = "menu"
	case Help:
		s = "help"
	case Abort:
		s = "abort"
	case ListEvents:
		s = "events"
	case ShowProfile:
		s = "me"
	case EditProfile:
		s = "me:edit"
	case MyRegistrations:
		s = "myregs"
	case ShowEvent:
		s = join("ev", v.EventID)
	case Register:
		s = join("reg", v.EventID)
	case CancelRegistration:
		s = join("unreg", v.EventID)
	case DropRegistration:
		s = join("drop", v.RegistrationID)
	case AdminPanel:
		s = "adm"
	case AdminListEvents:
		s = "adm:events"
	case AdminEditList:
		s = "adm:edit"
	case AdminStartCreate:
		s = "adm:new"
	case AdminParticipantsMenu:
		s = "adm:parts"
	case AdminStats:
		s = "adm:stats"
	case AdminExport:
		s = "adm:export"
	case AdminReconcile:
		s = "adm:reconcile"
	case AdminShowEvent:
		s = join("adm:ev", v.EventID)
	case AdminParticipants:
		s = join("adm:parts", v.EventID)
	case AdminStartEdit:
		s = join("adm:field", v.EventID) + ":" + string(v.Field)
	case AdminSetActive:
		s = join("adm:active", v.EventID) + ":" + flag(v.Active)
	case AdminSetOpen:
		s = join("adm:open", v.EventID) + ":" + flag(v.Open)
	case AdminDelete:
		s = join("adm:del", v.EventID) + ":" + flag(v.Cascade)
	case AdminRelease:
		s = join("adm:rel", v.EventID) + ":" + strconv.FormatInt(v.VolunteerID, 10)
	default:
		return "", fmt.Errorf("%w: %T has no selector", ErrBadSelector, in)
	}

	if len(s) > maxSelectorLen {
		return "", fmt.Errorf("%w: %q exceeds %d bytes", ErrBadSelector, s, maxSelectorLen)
	}
	return s, nil
}

// MustSelector is Selector for intents known to encode.
func MustSelector(in Intent) string {
	s, err := Selector(in)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSelector is the inverse of Selector.
func ParseSelector(data string) (Intent, error) {
	parts := strings.Split(data, ":")
	bad := func() (Intent, error) {
		return nil, fmt.Errorf("%w: %q", ErrBadSelector, data)
	}

	if parts[0] == "adm" {
		return parseAdminSelector(parts[1:], bad)
	}

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "menu":
			return MainMenu{}, nil
		case "help":
			return Help{}, nil
		case "abort":
			return Abort{}, nil
		case "events":
			return ListEvents{}, nil
		case "me":
			return ShowProfile{}, nil
		case "myregs":
			return MyRegistrations{}, nil
		}
	case 2:
		if parts[0] == "me" && parts[1] == "edit" {
			return EditProfile{}, nil
		}
		id, ok := parseID(parts[1])
		if !ok {
			return bad()
		}
		switch parts[0] {
		case "ev":
			return ShowEvent{EventID: id}, nil
		case "reg":
			return Register{EventID: id}, nil
		case "unreg":
			return CancelRegistration{EventID: id}, nil
		case "drop":
			return DropRegistration{RegistrationID: id}, nil
		}
	}
	return bad()
}

func parseAdminSelector(parts []string, bad func() (Intent, error)) (Intent, error) {
	switch len(parts) {
	case 0:
		return AdminPanel{}, nil
	case 1:
		switch parts[0] {
		case "events":
			return AdminListEvents{}, nil
		case "edit":
			return AdminEditList{}, nil
		case "new":
			return AdminStartCreate{}, nil
		case "parts":
			return AdminParticipantsMenu{}, nil
		case "stats":
			return AdminStats{}, nil
		case "export":
			return AdminExport{}, nil
		case "reconcile":
			return AdminReconcile{}, nil
		}
		return bad()
	}

	id, ok := parseID(parts[1])
	if !ok {
		return bad()
	}

	if len(parts) == 2 {
		switch parts[0] {
		case "ev":
			return AdminShowEvent{EventID: id}, nil
		case "parts":
			return AdminParticipants{EventID: id}, nil
		}
		return bad()
	}
	if len(parts) != 3 {
		return bad()
	}

	arg := parts[2]
	switch parts[0] {
	case "field":
		f, err := domain.ParseEventField(arg)
		if err != nil {
			return bad()
		}
		return AdminStartEdit{EventID: id, Field: f}, nil
	case "active", "open", "del":
		on, ok := parseFlag(arg)
		if !ok {
			return bad()
		}
		switch parts[0] {
		case "active":
			return AdminSetActive{EventID: id, Active: on}, nil
		case "open":
			return AdminSetOpen{EventID: id, Open: on}, nil
		default:
			return AdminDelete{EventID: id, Cascade: on}, nil
		}
	case "rel":
		vid, ok := parseID(arg)
		if !ok {
			return bad()
		}
		return AdminRelease{EventID: id, VolunteerID: vid}, nil
	}
	return bad()
}

func join(verb string, id int64) string {
	return verb + ":" + strconv.FormatInt(id, 10)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(s string) (bool, bool) {
	switch s {
	case "1":
		return true, true
	case "0":
		return false, true
	default:
		return false, false
	}
}

func parseID(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil && n > 0
}
