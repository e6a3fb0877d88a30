package sqlstore

import (
	"context"
	"database/sql"

	"weddingrsvp/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(conn *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: conn,
	}
}

func (r *invitationRepository) ListEventsForGuest(ctx context.Context, guestID int64) ([]*domain.InvitedEvent, error) {
	query := `
		SELECT e.id, e.name, e.date, ge.children_invited
		FROM guest_events ge
		JOIN events e ON e.id = ge.event_id
		WHERE ge.guest_id = $1
		ORDER BY e.date, e.id
	`
	rows, err := r.DB.QueryContext(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.InvitedEvent, 0)
	for rows.Next() {
		e := &domain.InvitedEvent{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.ChildrenInvited); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *invitationRepository) ListStatuses(ctx context.Context) ([]*domain.InvitationStatus, error) {
	query := `
		SELECT e.id, e.name, e.date, g.id, g.name, f.rsvp_code, f.has_spouse, f.has_children,
			r.id, r.attending, r.children_attending, r.number_of_children, r.children_comments, r.comment
		FROM guest_events ge
		JOIN guests g ON g.id = ge.guest_id
		JOIN families f ON f.id = g.family_id
		JOIN events e ON e.id = ge.event_id
		LEFT JOIN rsvp_responses r ON r.guest_id = ge.guest_id AND r.event_id = ge.event_id
		ORDER BY e.date, e.id, g.name, g.id, r.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	statuses := make([]*domain.InvitationStatus, 0)
	for rows.Next() {
		s := &domain.InvitationStatus{}
		var (
			respID                       sql.NullInt64
			attending, childrenAttending sql.NullBool
			numChildren                  sql.NullInt64
			childrenComments, comment    sql.NullString
		)
		if err := rows.Scan(
			&s.EventID, &s.EventName, &s.EventDate, &s.GuestID, &s.GuestName, &s.RSVPCode, &s.HasSpouse, &s.HasChildren,
			&respID, &attending, &childrenAttending, &numChildren, &childrenComments, &comment,
		); err != nil {
			return nil, err
		}
		if respID.Valid {
			s.Response = &domain.Response{
				ID:                respID.Int64,
				GuestID:           s.GuestID,
				EventID:           s.EventID,
				Attending:         boolPtr(attending),
				ChildrenAttending: boolPtr(childrenAttending),
				NumberOfChildren:  intPtr(numChildren),
				ChildrenComments:  stringPtr(childrenComments),
				Comment:           stringPtr(comment),
			}
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
