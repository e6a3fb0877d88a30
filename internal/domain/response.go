package domain

import "context"

// Response is a guest's answer for one event. Nullable columns are pointers.
// swagger:model Response
type Response struct {
	ID                int64   `json:"id"`
	GuestID           int64   `json:"guest_id"`
	EventID           int64   `json:"event_id"`
	Attending         *bool   `json:"attending"`
	ChildrenAttending *bool   `json:"children_attending"`
	NumberOfChildren  *int    `json:"number_of_children"`
	ChildrenComments  *string `json:"children_comments"`
	Comment           *string `json:"comment"`
}

// ResponseInput is one entry of a guest submission. Attending is required; a missing or
// null value is rejected rather than read as "not attending".
// swagger:model ResponseInput
type ResponseInput struct {
	EventID           int64   `json:"event_id"`
	Attending         *bool   `json:"attending"`
	Comment           string  `json:"comment"`
	ChildrenAttending *bool   `json:"children_attending,omitempty"`
	NumberOfChildren  *int    `json:"number_of_children,omitempty"`
	ChildrenComments  *string `json:"children_comments,omitempty"`
}

// ResponseDetail is a stored response joined to guest and event names.
type ResponseDetail struct {
	Response
	GuestName string
	EventName string
}

// ResponseRepository defines the interface for rsvp_responses storage.
type ResponseRepository interface {
	// ReplaceForGuest deletes every response of the guest and inserts responses in one transaction.
	// A response for an event the guest is not invited to fails with ErrInvalidInput.
	ReplaceForGuest(ctx context.Context, guestID int64, responses []*Response) error
	// DeleteByGuestID removes every response of the guest and reports how many rows went away.
	DeleteByGuestID(ctx context.Context, guestID int64) (int64, error)
	// ListByGuestID returns the guest's current responses ordered by event.
	ListByGuestID(ctx context.Context, guestID int64) ([]*Response, error)
	// ListDetailed returns every response ordered by id.
	ListDetailed(ctx context.Context) ([]*ResponseDetail, error)
}

// RSVPService is the guest-facing RSVP flow plus admin response deletion.
type RSVPService interface {
	Lookup(ctx context.Context, code string) (*GuestLogin, error)
	Submit(ctx context.Context, guestID int64, responses []ResponseInput) error
	DeleteResponses(ctx context.Context, guestID int64) error
}
