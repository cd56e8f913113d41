package domain

import "time"

type Registration struct {
	ID          int64     `json:"id"`
	VolunteerID int64     `json:"volunteer_id"`
	EventID     int64     `json:"event_id"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Participant is a registration joined with the registrant's profile.
type Participant struct {
	Registration Registration `json:"registration"`
	Volunteer    Volunteer    `json:"volunteer"`
}

// VolunteerRegistration is a registration joined with its event.
type VolunteerRegistration struct {
	Registration Registration `json:"registration"`
	Event        Event        `json:"event"`
}

type EventCount struct {
	EventID       int64  `json:"event_id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Registrations int    `json:"registrations"`
}

type Stats struct {
	Volunteers    int          `json:"volunteers"`
	Events        int          `json:"events"`
	Registrations int          `json:"registrations"`
	ExportRows    int          `json:"export_rows"`
	TopEvents     []EventCount `json:"top_events"`
}

// EventParticipants is the admin view of one event's registrants.
type EventParticipants struct {
	Summary      EventSummary  `json:"summary"`
	Participants []Participant `json:"participants"`
}
