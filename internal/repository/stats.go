package repository

import (
	"context"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/storage"
)

type StatsRepository struct {
	db *storage.DB
}

func NewStatsRepo(db *storage.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Stats(ctx context.Context, top int) (*domain.Stats, error) {
	var (
		s   domain.Stats
		err error
	)
	if s.Volunteers, err = count(ctx, r.db, `SELECT COUNT(*) FROM volunteers`); err != nil {
		return nil, fmt.Errorf("count volunteers: %w", err)
	}
	if s.Events, err = count(ctx, r.db, `SELECT COUNT(*) FROM events`); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if s.Registrations, err = count(ctx, r.db, `SELECT COUNT(*) FROM registrations`); err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	query := `SELECT e.id, e.title, e.date, COUNT(r.id) AS cnt
			  FROM events e
			  JOIN registrations r ON r.event_id = e.id
			  GROUP BY e.id, e.title, e.date
			  ORDER BY cnt DESC, e.id
			  LIMIT ?`
	rows, err := r.db.Query(ctx, query, top)
	if err != nil {
		return nil, fmt.Errorf("top events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.EventCount
		if err = rows.Scan(&c.EventID, &c.Title, &c.Date, &c.Registrations); err != nil {
			return nil, fmt.Errorf("scan top event: %w", err)
		}
		s.TopEvents = append(s.TopEvents, c)
	}

	return &s, rows.Err()
}
