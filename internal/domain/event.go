package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location,omitempty"`
	Capacity         *int      `json:"capacity,omitempty"`
	Active           bool      `json:"active"`
	RegistrationOpen bool      `json:"registration_open"`
	CreatedAt        time.Time `json:"created_at"`
}

// Unlimited reports whether the event accepts any number of registrations.
func (e *Event) Unlimited() bool {
	return e.Capacity == nil
}

// HasPassed reports whether the event day is strictly before the day of now.
func (e *Event) HasPassed(now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, e.Date, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

// AcceptsSignups reports whether new registrations may be created at now.
func (e *Event) AcceptsSignups(now time.Time) bool {
	return e.Active && e.RegistrationOpen && !e.HasPassed(now)
}

type EventSummary struct {
	Event      Event `json:"event"`
	Registered int   `json:"registered"`
	// Remaining is nil for unlimited events.
	Remaining *int `json:"remaining,omitempty"`
}

func NewEventSummary(e Event, registered int) EventSummary {
	s := EventSummary{Event: e, Registered: registered}
	if e.Capacity != nil {
		left := max(*e.Capacity-registered, 0)
		s.Remaining = &left
	}
	return s
}

// EventFilter narrows event listings. The zero value lists every event.
type EventFilter struct {
	// OpenOnly keeps active events with registration open.
	OpenOnly bool
	// FromDate keeps events on or after this YYYY-MM-DD day.
	FromDate string
}

// Ограничения длины; теги EventInput должны с ними совпадать.
const (
	MaxTitleLen       = 200
	MaxLocationLen    = 300
	MaxDescriptionLen = 2000
)

// EventInput is the canonical named-field form of a new event.
type EventInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Date        string `validate:"required,eventdate"`
	Time        string `validate:"required,eventtime"`
	Location    string `validate:"required,max=300"`
	// Capacity of 0 means unlimited.
	Capacity int `validate:"gte=0"`
}

// CapacityPtr converts the input form (0 = unlimited) to the stored form.
func (in EventInput) CapacityPtr() *int {
	if in.Capacity == 0 {
		return nil
	}
	c := in.Capacity
	return &c
}

type EventField string

const (
	FieldTitle       EventField = "title"
	FieldDescription EventField = "description"
	FieldDate        EventField = "date"
	FieldTime        EventField = "time"
	FieldLocation    EventField = "location"
	FieldCapacity    EventField = "capacity"
)

var EventFields = []EventField{
	FieldTitle, FieldDescription, FieldDate, FieldTime, FieldLocation, FieldCapacity,
}

func ParseEventField(s string) (EventField, error) {
	for _, f := range EventFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown event field %q", ErrValidation, s)
}

// Column returns the events table column backing the field.
func (f EventField) Column() string {
	if f == FieldCapacity {
		return "capacity"
	}
	return string(f)
}
