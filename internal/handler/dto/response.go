package dto

import (
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type EventResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	Active           bool   `json:"active"`
	RegistrationOpen bool   `json:"registration_open"`
	Registered       int    `json:"registered"`
	Remaining        *int   `json:"remaining"`
	CreatedAt        string `json:"created_at"`
}

type VolunteerResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Group     string `json:"group"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	Handle    string `json:"handle"`
}

type ParticipantResponse struct {
	RegistrationID int64             `json:"registration_id"`
	Comment        string            `json:"comment"`
	RegisteredAt   string            `json:"registered_at"`
	Volunteer      VolunteerResponse `json:"volunteer"`
}

type ParticipantsResponse struct {
	Event        EventResponse         `json:"event"`
	Participants []ParticipantResponse `json:"participants"`
}

type DivergenceResponse struct {
	InSync           bool    `json:"in_sync"`
	MissingCreated   []int64 `json:"missing_created"`
	MissingCancelled []int64 `json:"missing_cancelled"`
}

type RebuildResponse struct {
	Rows int `json:"rows"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(s *domain.EventSummary) EventResponse {
	return EventResponse{
		ID:               s.Event.ID,
		Title:            s.Event.Title,
		Description:      s.Event.Description,
		Date:             s.Event.Date,
		Time:             s.Event.Time,
		Location:         s.Event.Location,
		Capacity:         s.Event.Capacity,
		Active:           s.Event.Active,
		RegistrationOpen: s.Event.RegistrationOpen,
		Registered:       s.Registered,
		Remaining:        s.Remaining,
		CreatedAt:        s.Event.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantsResponse(p *domain.EventParticipants) ParticipantsResponse {
	participants := make([]ParticipantResponse, 0, len(p.Participants))
	for _, pt := range p.Participants {
		participants = append(participants, ParticipantResponse{
			RegistrationID: pt.Registration.ID,
			Comment:        pt.Registration.Comment,
			RegisteredAt:   pt.Registration.CreatedAt.Format(time.RFC3339),
			Volunteer: VolunteerResponse{
				ID:        pt.Volunteer.ID,
				FullName:  pt.Volunteer.FullName,
				Group:     pt.Volunteer.Group,
				BirthDate: pt.Volunteer.BirthDate,
				Phone:     pt.Volunteer.Phone,
				Handle:    pt.Volunteer.Handle,
			},
		})
	}

	return ParticipantsResponse{
		Event:        ToEventResponse(&p.Summary),
		Participants: participants,
	}
}

func ToDivergenceResponse(d domain.Divergence) DivergenceResponse {
	resp := DivergenceResponse{
		InSync:           d.Empty(),
		MissingCreated:   d.MissingCreated,
		MissingCancelled: d.MissingCancelled,
	}
	if resp.MissingCreated == nil {
		resp.MissingCreated = []int64{}
	}
	if resp.MissingCancelled == nil {
		resp.MissingCancelled = []int64{}
	}
	return resp
}
