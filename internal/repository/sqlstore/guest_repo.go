package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"weddingrsvp/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(conn *sql.DB) domain.GuestRepository {
	return &guestRepository{
		DB: conn,
	}
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	query := `
		SELECT id, name, family_id
		FROM guests
		WHERE id = $1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.FamilyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// FindByRSVPCode matches the code exactly; callers trim it.
func (r *guestRepository) FindByRSVPCode(ctx context.Context, code string) (*domain.GuestWithFamily, error) {
	query := `
		SELECT f.id, f.rsvp_code, f.has_children, f.has_spouse, g.id, g.name
		FROM families f
		JOIN guests g ON g.family_id = f.id
		WHERE f.rsvp_code = $1
		ORDER BY g.id
		LIMIT 1
	`
	f := &domain.Family{}
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, code).Scan(&f.ID, &f.RSVPCode, &f.HasChildren, &f.HasSpouse, &g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	g.FamilyID = f.ID
	return &domain.GuestWithFamily{Guest: g, Family: f}, nil
}
