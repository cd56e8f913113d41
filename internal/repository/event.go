package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
)

const eventColumns = `e.id, e.title, e.description, e.date, e.time, e.location,
		e.capacity, e.active, e.registration_open, e.created_at`

type EventRepository struct {
	db *storage.DB
}

func NewEventRepo(db *storage.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, description, date, time, location, capacity,
			  	active, registration_open, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			  RETURNING id`
	e.CreatedAt = now()
	row, err := r.db.QueryRow(
		ctx, query,
		e.Title, nullString(e.Description), e.Date, e.Time, nullString(e.Location),
		nullInt(e.Capacity), e.Active, e.RegistrationOpen, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = ?`
	row, err := r.db.QueryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetSummary(ctx context.Context, id int64) (*domain.EventSummary, error) {
	query := `SELECT ` + eventColumns + `, COUNT(r.id)
			  FROM events e
			  LEFT JOIN registrations r ON r.event_id = e.id
			  WHERE e.id = ?
			  GROUP BY ` + groupByEvent
	row, err := r.db.QueryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event summary: %w", err)
	}

	s, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event summary: %w", err)
	}

	return s, nil
}

const groupByEvent = `e.id, e.title, e.description, e.date, e.time, e.location,
		e.capacity, e.active, e.registration_open, e.created_at`

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]domain.EventSummary, error) {
	query := `SELECT ` + eventColumns + `, COUNT(r.id)
			  FROM events e
			  LEFT JOIN registrations r ON r.event_id = e.id
			  WHERE (? = FALSE OR (e.active = TRUE AND e.registration_open = TRUE))
			    AND (? = '' OR e.date >= ?)
			  GROUP BY ` + groupByEvent + `
			  ORDER BY e.date, e.time, e.id`

	rows, err := r.db.Query(ctx, query, f.OpenOnly, f.FromDate, f.FromDate)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []domain.EventSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, *s)
	}

	return res, rows.Err()
}

// UpdateField writes one already-validated value into the column behind f.
func (r *EventRepository) UpdateField(ctx context.Context, id int64, f domain.EventField, value any) error {
	var column string
	switch f {
	case domain.FieldTitle, domain.FieldDescription, domain.FieldDate,
		domain.FieldTime, domain.FieldLocation, domain.FieldCapacity:
		column = f.Column()
	default:
		return fmt.Errorf("%w: unknown event field %q", domain.ErrValidation, f)
	}

	switch v := value.(type) {
	case string:
		if f == domain.FieldDescription || f == domain.FieldLocation {
			value = nullString(v)
		}
	case *int:
		value = nullInt(v)
	}

	query := `UPDATE events SET ` + column + ` = ? WHERE id = ?`
	return r.execOne(ctx, query, value, id)
}

func (r *EventRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.execOne(ctx, `UPDATE events SET active = ? WHERE id = ?`, active, id)
}

func (r *EventRepository) SetRegistrationOpen(ctx context.Context, id int64, open bool) error {
	return r.execOne(ctx, `UPDATE events SET registration_open = ? WHERE id = ?`, open, id)
}

// Delete removes an event with no registrations. The emptiness check is part
// of the DELETE itself, so a registration committed meanwhile blocks it.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events
			  WHERE id = ?
			    AND NOT EXISTS (SELECT 1 FROM registrations WHERE event_id = ?)`
	res, err := r.db.Exec(ctx, query, id, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Определяем причину: мероприятия нет или на него есть записи
	if _, err = r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrEventHasRegistrations
}

// DeleteCascade removes the event together with its registrations in one
// transaction and returns the registrations that were removed.
func (r *EventRepository) DeleteCascade(ctx context.Context, id int64) ([]domain.Registration, error) {
	var removed []domain.Registration

	err := r.db.WithTx(ctx, func(ctx context.Context, q storage.Querier) error {
		rows, err := q.Query(ctx, `SELECT `+registrationColumns+`
			FROM registrations r WHERE r.event_id = ? ORDER BY r.id`, id)
		if err != nil {
			return fmt.Errorf("select registrations: %w", err)
		}
		for rows.Next() {
			reg, err := scanRegistration(rows)
			if err != nil {
				rows.Close()
				return fmt.Errorf("scan registration: %w", err)
			}
			removed = append(removed, *reg)
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return err
		}

		if _, err = q.Exec(ctx, `DELETE FROM registrations WHERE event_id = ?`, id); err != nil {
			return fmt.Errorf("delete registrations: %w", err)
		}

		res, err := q.Exec(ctx, `DELETE FROM events WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("event rows affected: %w", err)
		}
		if n == 0 {
			return domain.ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM events`)
}

func (r *EventRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var (
		e                     domain.Event
		description, location sql.NullString
		capacity              sql.NullInt64
	)
	if err := s.Scan(
		&e.ID, &e.Title, &description, &e.Date, &e.Time, &location,
		&capacity, &e.Active, &e.RegistrationOpen, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Description = description.String
	e.Location = location.String
	e.Capacity = intPtr(capacity)
	return &e, nil
}

func scanSummary(s rowScanner) (*domain.EventSummary, error) {
	var (
		e                     domain.Event
		description, location sql.NullString
		capacity              sql.NullInt64
		registered            int
	)
	if err := s.Scan(
		&e.ID, &e.Title, &description, &e.Date, &e.Time, &location,
		&capacity, &e.Active, &e.RegistrationOpen, &e.CreatedAt, &registered,
	); err != nil {
		return nil, err
	}
	e.Description = description.String
	e.Location = location.String
	e.Capacity = intPtr(capacity)

	summary := domain.NewEventSummary(e, registered)
	return &summary, nil
}

func count(ctx context.Context, q storage.Querier, query string, args ...any) (int, error) {
	row, err := q.QueryRow(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return n, nil
}
