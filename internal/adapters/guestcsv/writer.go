package guestcsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"weddingrsvp/internal/domain"
)

var guestListHeader = []string{
	"event_id", "event_name", "guest_id", "guest_name", "rsvp_code", "has_spouse", "has_children",
	"attending_status", "adult_count", "children_count", "children_details", "comments",
}

// WriteGuestList writes the event guest list as CSV with a header row.
func WriteGuestList(w io.Writer, entries []*domain.GuestListEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(guestListHeader); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.FormatInt(e.EventID, 10),
			e.EventName,
			strconv.FormatInt(e.GuestID, 10),
			e.GuestName,
			e.RSVPCode,
			yesNo(e.HasSpouse),
			yesNo(e.HasChildren),
			e.AttendingStatus,
			strconv.Itoa(e.AdultCount),
			strconv.Itoa(e.ChildrenCount),
			e.ChildrenDetails,
			e.Comments,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
