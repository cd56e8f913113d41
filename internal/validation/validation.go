// Package validation checks user-supplied profile and event values.
//
// Struct validation goes through go-playground/validator with a few custom
// tags (eventdate, eventtime, birthdate, phone, handle). Failures come back
// as *FieldError, which names the offending field and the expected format
// and matches domain.ErrValidation.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

// Format hints attached to FieldError.Expected.
const (
	FormatText     = "non-empty text"
	FormatDate     = "YYYY-MM-DD"
	FormatTime     = "HH:MM"
	FormatCapacity = "non-negative integer, 0 for unlimited"
	FormatBirth    = "DD.MM.YYYY"
	FormatPhone    = "phone number"
	FormatHandle   = "@handle"
)

type FieldError struct {
	Field    string
	Expected string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: expected %s", e.Field, e.Expected)
}

func (e *FieldError) Unwrap() error {
	return domain.ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	must := func(tag string, fn func(string) bool) {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	must("eventdate", IsDate)
	must("eventtime", IsTime)
	must("birthdate", IsBirthDate)
	must("phone", IsPhone)
	must("handle", IsHandle)

	return v
}

// поля структур -> имя поля и ожидаемый формат в ошибке
var fields = map[string]FieldError{
	"Title":       {Field: "title", Expected: FormatText},
	"Description": {Field: "description", Expected: "text up to 2000 characters"},
	"Date":        {Field: "date", Expected: FormatDate},
	"Time":        {Field: "time", Expected: FormatTime},
	"Location":    {Field: "location", Expected: FormatText},
	"Capacity":    {Field: "capacity", Expected: FormatCapacity},
	"FullName":    {Field: "full_name", Expected: FormatText},
	"Group":       {Field: "group", Expected: FormatText},
	"BirthDate":   {Field: "birth_date", Expected: FormatBirth},
	"Phone":       {Field: "phone", Expected: FormatPhone},
	"Handle":      {Field: "handle", Expected: FormatHandle},
}

// Struct validates s and reports the first failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fe := verrs[0]
	if known, ok := fields[fe.StructField()]; ok {
		return &known
	}
	return &FieldError{Field: strings.ToLower(fe.StructField()), Expected: fe.Tag()}
}

// Event validates an event submission and canonicalizes its time to HH:MM.
func Event(in domain.EventInput) (domain.EventInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Location = strings.TrimSpace(in.Location)

	if err := Struct(in); err != nil {
		return in, err
	}
	in.Time = canonicalTime(in.Time)
	return in, nil
}

func Profile(in domain.ProfileInput) (domain.ProfileInput, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Group = strings.TrimSpace(in.Group)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Handle = strings.TrimSpace(in.Handle)

	if err := Struct(in); err != nil {
		return in, err
	}
	return in, nil
}

// EventFieldValue parses raw as the new value of field f. Text fields come
// back as string, capacity as *int (nil for unlimited).
func EventFieldValue(f domain.EventField, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f {
	case domain.FieldTitle:
		if raw == "" || utf8.RuneCountInString(raw) > domain.MaxTitleLen {
			return nil, &FieldError{Field: string(f), Expected: FormatText}
		}
		return raw, nil
	case domain.FieldLocation:
		if raw == "" || utf8.RuneCountInString(raw) > domain.MaxLocationLen {
			return nil, &FieldError{Field: string(f), Expected: FormatText}
		}
		return raw, nil
	case domain.FieldDescription:
		if raw == "-" {
			return "", nil
		}
		if utf8.RuneCountInString(raw) > domain.MaxDescriptionLen {
			return nil, &FieldError{Field: string(f), Expected: "text up to 2000 characters"}
		}
		return raw, nil
	case domain.FieldDate:
		if !IsDate(raw) {
			return nil, &FieldError{Field: string(f), Expected: FormatDate}
		}
		return raw, nil
	case domain.FieldTime:
		if !IsTime(raw) {
			return nil, &FieldError{Field: string(f), Expected: FormatTime}
		}
		return canonicalTime(raw), nil
	case domain.FieldCapacity:
		n, err := Capacity(raw)
		if err != nil {
			return nil, err
		}
		return domain.EventInput{Capacity: n}.CapacityPtr(), nil
	default:
		return nil, fmt.Errorf("%w: unknown event field %q", domain.ErrValidation, f)
	}
}

// Capacity parses a non-negative integer where 0 means unlimited.
func Capacity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, &FieldError{Field: string(domain.FieldCapacity), Expected: FormatCapacity}
	}
	return n, nil
}

func IsDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil && len(s) == len(domain.DateLayout)
}

func IsTime(s string) bool {
	_, err := time.Parse(domain.TimeLayout, s)
	return err == nil
}

func IsBirthDate(s string) bool {
	d, err := time.Parse(domain.BirthDateLayout, s)
	return err == nil && d.Year() >= 1900 && len(s) == len(domain.BirthDateLayout)
}

// IsPhone accepts digits with an optional leading '+' and the usual
// separators, 5 to 15 digits in total.
func IsPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 5 && digits <= 15
}

func IsHandle(s string) bool {
	if len(s) < 2 || s[0] != '@' {
		return false
	}
	return !strings.ContainsFunc(s[1:], unicode.IsSpace)
}

func canonicalTime(s string) string {
	t, err := time.Parse(domain.TimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format(domain.TimeLayout)
}
