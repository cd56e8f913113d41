package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
)

const registrationColumns = `r.id, r.volunteer_id, r.event_id, r.comment, r.created_at`

type RegistrationRepository struct {
	db *storage.DB
}

func NewRegistrationRepo(db *storage.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Insert stores reg and fills its ID. A second row for the same
// (volunteer, event) pair fails with domain.ErrDuplicateKey.
func (r *RegistrationRepository) Insert(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (volunteer_id, event_id, comment, created_at)
			  VALUES (?, ?, ?, ?)
			  RETURNING id`
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = now()
	}

	row, err := r.db.QueryRow(ctx, query, reg.VolunteerID, reg.EventID, nullString(reg.Comment), reg.CreatedAt)
	if err == nil {
		err = row.Scan(&reg.ID)
	}
	if err != nil {
		switch {
		case storage.IsUniqueViolation(err):
			return domain.ErrDuplicateKey
		case storage.IsForeignKeyViolation(err):
			return fmt.Errorf("%w: insert registration: %v", domain.ErrEventNotFound, err)
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations r
			  WHERE r.id = ?`
	return r.getOne(ctx, query, id)
}

func (r *RegistrationRepository) GetByPair(ctx context.Context, volunteerID, eventID int64) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations r
			  WHERE r.volunteer_id = ? AND r.event_id = ?`
	return r.getOne(ctx, query, volunteerID, eventID)
}

func (r *RegistrationRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.deleteOne(ctx, `DELETE FROM registrations WHERE id = ?`, id)
}

func (r *RegistrationRepository) DeleteByPair(ctx context.Context, volunteerID, eventID int64) error {
	return r.deleteOne(ctx, `DELETE FROM registrations WHERE volunteer_id = ? AND event_id = ?`, volunteerID, eventID)
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM registrations WHERE event_id = ?`, eventID)
}

func (r *RegistrationRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM registrations`)
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations r
			  WHERE r.event_id = ?
			  ORDER BY r.id`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations r
			  ORDER BY r.id`
	return r.list(ctx, query)
}

// ListParticipants returns the event's registrations with profiles, ordered by name.
func (r *RegistrationRepository) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	query := `SELECT ` + registrationColumns + `, ` + volunteerColumns + `
			  FROM registrations r
			  JOIN volunteers v ON v.id = r.volunteer_id
			  WHERE r.event_id = ?
			  ORDER BY v.full_name, r.id`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []domain.Participant
	for rows.Next() {
		var (
			p       domain.Participant
			comment sql.NullString
			vf      volunteerNulls
		)
		if err = rows.Scan(
			&p.Registration.ID, &p.Registration.VolunteerID, &p.Registration.EventID,
			&comment, &p.Registration.CreatedAt,
			&p.Volunteer.ID, &p.Volunteer.FullName, &vf.group, &vf.birthDate,
			&vf.phone, &vf.handle, &p.Volunteer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.Registration.Comment = comment.String
		vf.apply(&p.Volunteer)
		res = append(res, p)
	}

	return res, rows.Err()
}

// ListByVolunteer returns the volunteer's registrations with their events, soonest first.
func (r *RegistrationRepository) ListByVolunteer(ctx context.Context, volunteerID int64) ([]domain.VolunteerRegistration, error) {
	query := `SELECT ` + registrationColumns + `, ` + eventColumns + `
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  WHERE r.volunteer_id = ?
			  ORDER BY e.date, e.time, r.id`

	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by volunteer: %w", err)
	}
	defer rows.Close()

	var res []domain.VolunteerRegistration
	for rows.Next() {
		var (
			vr                             domain.VolunteerRegistration
			comment, description, location sql.NullString
			capacity                       sql.NullInt64
		)
		if err = rows.Scan(
			&vr.Registration.ID, &vr.Registration.VolunteerID, &vr.Registration.EventID,
			&comment, &vr.Registration.CreatedAt,
			&vr.Event.ID, &vr.Event.Title, &description, &vr.Event.Date, &vr.Event.Time,
			&location, &capacity, &vr.Event.Active, &vr.Event.RegistrationOpen, &vr.Event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration by volunteer: %w", err)
		}
		vr.Registration.Comment = comment.String
		vr.Event.Description = description.String
		vr.Event.Location = location.String
		vr.Event.Capacity = intPtr(capacity)
		res = append(res, vr)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Registration, error) {
	row, err := r.db.QueryRow(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) deleteOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Registration, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, *reg)
	}

	return res, rows.Err()
}

func scanRegistration(s rowScanner) (*domain.Registration, error) {
	var (
		reg     domain.Registration
		comment sql.NullString
	)
	if err := s.Scan(&reg.ID, &reg.VolunteerID, &reg.EventID, &comment, &reg.CreatedAt); err != nil {
		return nil, err
	}
	reg.Comment = comment.String
	return &reg, nil
}
