package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"weddingrsvp/internal/domain"
)

type guestImportRepository struct {
	DB *sql.DB
}

func NewGuestImportRepository(conn *sql.DB) domain.GuestImportRepository {
	return &guestImportRepository{
		DB: conn,
	}
}

// ImportGuest upserts the family, finds or creates the guest and rewrites its invitations in one transaction.
// Event names that match no event are reported in SkippedEvents.
func (r *guestImportRepository) ImportGuest(ctx context.Context, g *domain.GuestImport) (*domain.ImportRowResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res := &domain.ImportRowResult{SkippedEvents: []string{}}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO families (rsvp_code, has_children, has_spouse)
		VALUES ($1, $2, $3)
		ON CONFLICT (rsvp_code) DO UPDATE SET has_children = excluded.has_children, has_spouse = excluded.has_spouse
		RETURNING id
	`, g.Code, g.HasChildren, g.HasSpouse).Scan(&res.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("upsert family: %w", err)
	}

	err = tx.QueryRowContext(ctx, `SELECT id FROM guests WHERE family_id = $1 AND name = $2`, res.FamilyID, g.Name).Scan(&res.GuestID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx, `INSERT INTO guests (name, family_id) VALUES ($1, $2) RETURNING id`, g.Name, res.FamilyID).Scan(&res.GuestID)
		if err != nil {
			return nil, fmt.Errorf("insert guest: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("find guest: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM guest_events WHERE guest_id = $1`, res.GuestID); err != nil {
		return nil, fmt.Errorf("clear invitations: %w", err)
	}

	seen := make(map[int64]struct{}, len(g.InvitedEvents))
	for _, name := range g.InvitedEvents {
		var eventID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE name = $1`, name).Scan(&eventID)
		if errors.Is(err, sql.ErrNoRows) {
			res.SkippedEvents = append(res.SkippedEvents, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find event %q: %w", name, err)
		}
		if _, dup := seen[eventID]; dup {
			continue
		}
		seen[eventID] = struct{}{}
		childrenInvited := slices.Contains(g.ChildrenInvitedEvents, name)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO guest_events (guest_id, event_id, children_invited)
			VALUES ($1, $2, $3)
		`, res.GuestID, eventID, childrenInvited)
		if err != nil {
			return nil, fmt.Errorf("insert invitation for %q: %w", name, err)
		}
		res.InvitationsCreated++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}
