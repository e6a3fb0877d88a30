package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"weddingrsvp/internal/domain"
)

type responseRepository struct {
	DB *sql.DB
}

func NewResponseRepository(conn *sql.DB) domain.ResponseRepository {
	return &responseRepository{
		DB: conn,
	}
}

// ReplaceForGuest swaps the guest's responses in one transaction. Each row is
// inserted only if the guest is invited to its event at that moment; an
// uninvited event fails the whole replace with domain.ErrInvalidInput.
func (r *responseRepository) ReplaceForGuest(ctx context.Context, guestID int64, responses []*domain.Response) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rsvp_responses WHERE guest_id = $1`, guestID); err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	query := `
		INSERT INTO rsvp_responses (guest_id, event_id, attending, children_attending, number_of_children, children_comments, comment)
		SELECT ge.guest_id, ge.event_id, CAST($3 AS BOOLEAN), CAST($4 AS BOOLEAN), CAST($5 AS INTEGER), CAST($6 AS TEXT), CAST($7 AS TEXT)
		FROM guest_events ge
		WHERE ge.guest_id = $1 AND ge.event_id = $2
	`
	for _, resp := range responses {
		result, err := tx.ExecContext(ctx, query,
			guestID, resp.EventID, nullBool(resp.Attending), nullBool(resp.ChildrenAttending),
			nullInt(resp.NumberOfChildren), nullString(resp.ChildrenComments), nullString(resp.Comment),
		)
		if err != nil {
			return fmt.Errorf("insert response for event %d: %w", resp.EventID, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("insert response for event %d: %w", resp.EventID, err)
		}
		if n == 0 {
			return domain.InvalidInputf("guest %d is not invited to event %d", guestID, resp.EventID)
		}
	}
	return tx.Commit()
}

func (r *responseRepository) DeleteByGuestID(ctx context.Context, guestID int64) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM rsvp_responses WHERE guest_id = $1`, guestID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *responseRepository) ListByGuestID(ctx context.Context, guestID int64) ([]*domain.Response, error) {
	query := `
		SELECT id, guest_id, event_id, attending, children_attending, number_of_children, children_comments, comment
		FROM rsvp_responses
		WHERE guest_id = $1
		ORDER BY event_id, id
	`
	rows, err := r.DB.QueryContext(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.Response, 0)
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, resp)
	}
	return list, rows.Err()
}

func (r *responseRepository) ListDetailed(ctx context.Context) ([]*domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.guest_id, r.event_id, r.attending, r.children_attending, r.number_of_children, r.children_comments, r.comment,
			g.name, e.name
		FROM rsvp_responses r
		JOIN guests g ON g.id = r.guest_id
		JOIN events e ON e.id = r.event_id
		ORDER BY r.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.ResponseDetail, 0)
	for rows.Next() {
		d := &domain.ResponseDetail{}
		var (
			attending, childrenAttending sql.NullBool
			numChildren                  sql.NullInt64
			childrenComments, comment    sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.GuestID, &d.EventID, &attending, &childrenAttending, &numChildren,
			&childrenComments, &comment, &d.GuestName, &d.EventName); err != nil {
			return nil, err
		}
		d.Attending = boolPtr(attending)
		d.ChildrenAttending = boolPtr(childrenAttending)
		d.NumberOfChildren = intPtr(numChildren)
		d.ChildrenComments = stringPtr(childrenComments)
		d.Comment = stringPtr(comment)
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanResponse(rows *sql.Rows) (*domain.Response, error) {
	resp := &domain.Response{}
	var (
		attending, childrenAttending sql.NullBool
		numChildren                  sql.NullInt64
		childrenComments, comment    sql.NullString
	)
	if err := rows.Scan(&resp.ID, &resp.GuestID, &resp.EventID, &attending, &childrenAttending, &numChildren,
		&childrenComments, &comment); err != nil {
		return nil, err
	}
	resp.Attending = boolPtr(attending)
	resp.ChildrenAttending = boolPtr(childrenAttending)
	resp.NumberOfChildren = intPtr(numChildren)
	resp.ChildrenComments = stringPtr(childrenComments)
	resp.Comment = stringPtr(comment)
	return resp, nil
}
