package domain

import "context"

// Display values used by the admin views.
const (
	StatusYes     = "Yes"
	StatusNo      = "No"
	StatusUnknown = "Unknown"
	StatusPending = "Pending"
)

// InvitationStatus is one invitation joined to its guest, family, event and response.
// Response is nil when the guest has not answered for the event.
type InvitationStatus struct {
	EventID     int64
	EventName   string
	EventDate   string
	GuestID     int64
	GuestName   string
	RSVPCode    string
	HasSpouse   bool
	HasChildren bool
	Response    *Response
}

// EventTotals is the headcount of one event.
// swagger:model EventTotals
type EventTotals struct {
	EventID        int64  `json:"event_id"`
	EventName      string `json:"event_name"`
	EventDate      string `json:"event_date"`
	TotalAdults    int    `json:"total_adults"`
	TotalChildren  int    `json:"total_children"`
	TotalAttendees int    `json:"total_attendees"`
}

// GuestListEntry is one row of the per-event guest list.
// swagger:model GuestListEntry
type GuestListEntry struct {
	EventID         int64  `json:"event_id"`
	EventName       string `json:"event_name"`
	GuestID         int64  `json:"guest_id"`
	GuestName       string `json:"guest_name"`
	RSVPCode        string `json:"rsvp_code"`
	HasSpouse       bool   `json:"has_spouse"`
	HasChildren     bool   `json:"has_children"`
	AttendingStatus string `json:"attending_status"`
	AdultCount      int    `json:"adult_count"`
	ChildrenCount   int    `json:"children_count"`
	ChildrenDetails string `json:"children_details"`
	Comments        string `json:"comments"`
}

// FormattedResponse is a response rendered for display.
// swagger:model FormattedResponse
type FormattedResponse struct {
	ID                int64  `json:"id"`
	GuestName         string `json:"guest_name"`
	EventName         string `json:"event_name"`
	Attending         string `json:"attending"`
	ChildrenAttending string `json:"children_attending"`
	NumberOfChildren  int    `json:"number_of_children"`
	ChildrenComments  string `json:"children_comments"`
	Comment           string `json:"comment"`
}

// ReportService serves the admin aggregation views.
type ReportService interface {
	EventTotals(ctx context.Context) ([]*EventTotals, error)
	EventGuestList(ctx context.Context) ([]*GuestListEntry, error)
	FormattedResponses(ctx context.Context) ([]*FormattedResponse, error)
}
