package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
)

const volunteerColumns = `v.id, v.full_name, v.group_name, v.birth_date, v.phone, v.handle, v.created_at`

type VolunteerRepository struct {
	db *storage.DB
}

func NewVolunteerRepo(db *storage.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Ensure creates a name-only profile on first contact and returns the
// stored profile either way.
func (r *VolunteerRepository) Ensure(ctx context.Context, id int64, fullName string) (*domain.Volunteer, error) {
	query := `INSERT INTO volunteers (id, full_name, created_at)
			  VALUES (?, ?, ?)
			  ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, id, fullName, now()); err != nil {
		return nil, fmt.Errorf("ensure volunteer: %w", err)
	}

	return r.GetByID(ctx, id)
}

// SaveProfile writes every profile field at once.
func (r *VolunteerRepository) SaveProfile(ctx context.Context, id int64, in domain.ProfileInput) error {
	query := `INSERT INTO volunteers (id, full_name, group_name, birth_date, phone, handle, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT (id) DO UPDATE SET
			  	full_name = excluded.full_name,
			  	group_name = excluded.group_name,
			  	birth_date = excluded.birth_date,
			  	phone = excluded.phone,
			  	handle = excluded.handle`
	_, err := r.db.Exec(
		ctx, query, id, in.FullName, nullString(in.Group), nullString(in.BirthDate),
		nullString(in.Phone), nullString(in.Handle), now(),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + `
			  FROM volunteers v
			  WHERE v.id = ?`

	row, err := r.db.QueryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get volunteer: %w", err)
	}

	var (
		v  domain.Volunteer
		vf volunteerNulls
	)
	if err = row.Scan(&v.ID, &v.FullName, &vf.group, &vf.birthDate, &vf.phone, &vf.handle, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("scan volunteer: %w", err)
	}
	vf.apply(&v)

	return &v, nil
}

func (r *VolunteerRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM volunteers`)
}

type volunteerNulls struct {
	group, birthDate, phone, handle sql.NullString
}

func (n volunteerNulls) apply(v *domain.Volunteer) {
	v.Group = n.group.String
	v.BirthDate = n.birthDate.String
	v.Phone = n.phone.String
	v.Handle = n.handle.String
}
