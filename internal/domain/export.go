package domain

import "time"

type ExportStatus string

const (
	ExportStatusCreated   ExportStatus = "created"
	ExportStatusCancelled ExportStatus = "cancelled"
)

// ExportRow is a denormalized copy of one registration at a point in time.
type ExportRow struct {
	RegistrationID int64
	ExportedAt     time.Time
	VolunteerID    int64
	FullName       string
	Group          string
	BirthDate      string
	Phone          string
	Handle         string
	EventID        int64
	EventTitle     string
	EventDate      string
	EventTime      string
	Location       string
	Comment        string
	Status         ExportStatus
}

func NewExportRow(r Registration, v Volunteer, e Event, status ExportStatus, at time.Time) ExportRow {
	return ExportRow{
		RegistrationID: r.ID,
		ExportedAt:     at,
		VolunteerID:    v.ID,
		FullName:       v.FullName,
		Group:          v.Group,
		BirthDate:      v.BirthDate,
		Phone:          v.Phone,
		Handle:         v.Handle,
		EventID:        e.ID,
		EventTitle:     e.Title,
		EventDate:      e.Date,
		EventTime:      e.Time,
		Location:       e.Location,
		Comment:        r.Comment,
		Status:         status,
	}
}

// Divergence describes how the export ledger differs from the registration ledger.
type Divergence struct {
	// MissingCreated are live registrations without a trailing created row.
	MissingCreated []int64 `json:"missing_created"`
	// MissingCancelled are ids whose latest row is created but the registration is gone.
	MissingCancelled []int64 `json:"missing_cancelled"`
}

func (d Divergence) Empty() bool {
	return len(d.MissingCreated) == 0 && len(d.MissingCancelled) == 0
}
