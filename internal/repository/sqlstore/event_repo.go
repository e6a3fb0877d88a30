package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"weddingrsvp/internal/db"
	"weddingrsvp/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(conn *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: conn,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.Name, e.Date).Scan(&e.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("event %q: %w", e.Name, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, date
		FROM events
		ORDER BY date, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
