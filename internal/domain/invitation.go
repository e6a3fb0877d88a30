package domain

import "context"

// Invitation marks a guest as eligible to respond for an event.
// swagger:model Invitation
type Invitation struct {
	GuestID         int64 `json:"guest_id"`
	EventID         int64 `json:"event_id"`
	ChildrenInvited bool  `json:"children_invited"`
}

// InvitedEvent is an event as seen by an invited guest.
// swagger:model InvitedEvent
type InvitedEvent struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	ChildrenInvited bool   `json:"children_invited"`
}

// InvitationRepository defines read access to guest_events.
type InvitationRepository interface {
	// ListEventsForGuest returns the events the guest is invited to, ordered by date then id.
	ListEventsForGuest(ctx context.Context, guestID int64) ([]*InvitedEvent, error)
	// ListStatuses returns one row per invitation joined to its family and response, if any.
	ListStatuses(ctx context.Context) ([]*InvitationStatus, error)
}

// GuestLogin is the payload returned to a guest after entering an RSVP code.
// swagger:model GuestLogin
type GuestLogin struct {
	FamilyID    int64           `json:"family_id"`
	RSVPCode    string          `json:"rsvp_code"`
	HasChildren bool            `json:"has_children"`
	HasSpouse   bool            `json:"has_spouse"`
	GuestID     int64           `json:"guest_id"`
	Name        string          `json:"name"`
	Events      []*InvitedEvent `json:"events"`
	// Responses holds what the guest already submitted, for pre-filling the form.
	Responses []*Response `json:"responses"`
}
