package domain

import "context"

// Family is an invitation unit: every guest in it logs in with the same RSVP code.
// swagger:model Family
type Family struct {
	ID          int64  `json:"id"`
	RSVPCode    string `json:"rsvp_code"`
	HasChildren bool   `json:"has_children"`
	HasSpouse   bool   `json:"has_spouse"`
}

// Guest is a named individual belonging to exactly one family.
// swagger:model Guest
type Guest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FamilyID int64  `json:"family_id"`
}

// GuestWithFamily bundles a guest with its owning family.
type GuestWithFamily struct {
	Guest  *Guest
	Family *Family
}

// GuestRepository defines read access to guests.
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*Guest, error)
	// FindByRSVPCode returns the first guest (lowest id) of the family owning code.
	FindByRSVPCode(ctx context.Context, code string) (*GuestWithFamily, error)
}
