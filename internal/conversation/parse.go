package conversation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
)

var ErrNotAwaiting = errors.New("no input is awaited")

const (
	profileFields    = 5
	maxCommentLength = 500
)

const (
	FormatProfile  = "5 comma-separated values: full name, group, birth date DD.MM.YYYY, phone, @handle"
	FormatNewEvent = "key: value lines with title, date, time, location, capacity and optional description"
	FormatComment  = "text up to 500 characters, - to skip"
)

type Submission interface {
	submission()
}

type ProfileSubmission struct {
	Input domain.ProfileInput
}

type NewEventSubmission struct {
	Input domain.EventInput
}

type FieldValueSubmission struct {
	EventID int64
	Field   domain.EventField
	// Raw is the trimmed text; Value is its parsed form.
	Raw   string
	Value any
}

type CommentSubmission struct {
	EventID int64
	Comment string
}

func (ProfileSubmission) submission()    {}
func (NewEventSubmission) submission()   {}
func (FieldValueSubmission) submission() {}
func (CommentSubmission) submission()    {}

// Parse validates text against what st awaits. A *validation.FieldError
// means the caller should keep st and ask again.
func Parse(st State, text string) (Submission, error) {
	switch st.Kind {
	case AwaitingProfile:
		in, err := ParseProfile(text)
		if err != nil {
			return nil, err
		}
		return ProfileSubmission{Input: in}, nil
	case AwaitingNewEvent:
		in, err := ParseNewEvent(text)
		if err != nil {
			return nil, err
		}
		return NewEventSubmission{Input: in}, nil
	case AwaitingEventFieldValue:
		v, err := validation.EventFieldValue(st.Field, text)
		if err != nil {
			return nil, err
		}
		return FieldValueSubmission{EventID: st.EventID, Field: st.Field, Raw: strings.TrimSpace(text), Value: v}, nil
	case AwaitingRegistrationComment:
		c, err := ParseComment(text)
		if err != nil {
			return nil, err
		}
		return CommentSubmission{EventID: st.EventID, Comment: c}, nil
	default:
		return nil, ErrNotAwaiting
	}
}

// ровно пять значений через запятую, порядок фиксирован
func ParseProfile(text string) (domain.ProfileInput, error) {
	parts := strings.Split(text, ",")
	if len(parts) != profileFields {
		return domain.ProfileInput{}, &validation.FieldError{Field: "profile", Expected: FormatProfile}
	}

	return validation.Profile(domain.ProfileInput{
		FullName:  parts[0],
		Group:     parts[1],
		BirthDate: parts[2],
		Phone:     parts[3],
		Handle:    parts[4],
	})
}

// ключи полей мероприятия, английские и русские
var eventKeys = map[string]domain.EventField{
	"title":       domain.FieldTitle,
	"name":        domain.FieldTitle,
	"название":    domain.FieldTitle,
	"date":        domain.FieldDate,
	"дата":        domain.FieldDate,
	"time":        domain.FieldTime,
	"время":       domain.FieldTime,
	"location":    domain.FieldLocation,
	"place":       domain.FieldLocation,
	"место":       domain.FieldLocation,
	"capacity":    domain.FieldCapacity,
	"вместимость": domain.FieldCapacity,
	"мест":        domain.FieldCapacity,
	"участников":  domain.FieldCapacity,
	"description": domain.FieldDescription,
	"описание":    domain.FieldDescription,
}

// ParseNewEvent reads "key: value" lines in any order. Every field except
// description is required; capacity 0 means unlimited.
func ParseNewEvent(text string) (domain.EventInput, error) {
	var (
		in   domain.EventInput
		seen = make(map[domain.EventField]bool)
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return in, &validation.FieldError{Field: "event", Expected: FormatNewEvent}
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		f, ok := eventKeys[key]
		if !ok {
			return in, &validation.FieldError{Field: key, Expected: FormatNewEvent}
		}
		seen[f] = true

		switch f {
		case domain.FieldTitle:
			in.Title = value
		case domain.FieldDate:
			in.Date = value
		case domain.FieldTime:
			in.Time = value
		case domain.FieldLocation:
			in.Location = value
		case domain.FieldDescription:
			if value != "-" {
				in.Description = value
			}
		case domain.FieldCapacity:
			n, err := validation.Capacity(value)
			if err != nil {
				return in, err
			}
			in.Capacity = n
		}
	}

	in, err := validation.Event(in)
	if err != nil {
		return in, err
	}
	if !seen[domain.FieldCapacity] {
		return in, &validation.FieldError{Field: string(domain.FieldCapacity), Expected: validation.FormatCapacity}
	}
	return in, nil
}

func ParseComment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "-" || strings.EqualFold(text, "/skip") {
		return "", nil
	}
	if len([]rune(text)) > maxCommentLength {
		return "", &validation.FieldError{Field: "comment", Expected: FormatComment}
	}
	return text, nil
}

func Describe(st State) string {
	switch st.Kind {
	case AwaitingEventFieldValue:
		return fmt.Sprintf("%s(event=%d, field=%s)", st.Kind, st.EventID, st.Field)
	case AwaitingRegistrationComment:
		return fmt.Sprintf("%s(event=%d)", st.Kind, st.EventID)
	case "":
		return string(Idle)
	default:
		return string(st.Kind)
	}
}
