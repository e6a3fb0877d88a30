// Package guestcsv reads guest lists for import and writes guest list exports as CSV.
package guestcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"weddingrsvp/internal/domain"
)

// Import columns. ColChildrenInvitedEvents is optional.
const (
	ColRSVPCode              = "rsvp_code"
	ColHasChildren           = "has_children"
	ColHasSpouse             = "has_spouse"
	ColName                  = "name"
	ColInvitedEvents         = "invited_events"
	ColChildrenInvitedEvents = "children_invited_events"
)

var requiredColumns = []string{ColRSVPCode, ColHasChildren, ColHasSpouse, ColName, ColInvitedEvents}

// ReadGuestRows parses a guest list with a header row. Columns may appear in any order; unknown
// columns are ignored. Text is NFC-normalized so names typed on different systems compare equal.
// Fully blank lines are skipped. Row.Line is the line number in the file, the header being line 1.
func ReadGuestRows(r io.Reader) ([]domain.GuestImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.InvalidInputf("csv is empty")
	}
	if err != nil {
		return nil, domain.InvalidInputf("read csv header: %v", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[h] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domain.InvalidInputf("csv header is missing columns: %s", strings.Join(missing, ", "))
	}

	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return norm.NFC.String(strings.TrimSpace(rec[i]))
	}

	rows := make([]domain.GuestImportRow, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.InvalidInputf("read csv: %v", err)
		}
		if isBlank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, domain.GuestImportRow{
			Line:                  line,
			Code:                  field(rec, ColRSVPCode),
			HasChildren:           field(rec, ColHasChildren),
			HasSpouse:             field(rec, ColHasSpouse),
			Name:                  field(rec, ColName),
			InvitedEvents:         field(rec, ColInvitedEvents),
			ChildrenInvitedEvents: field(rec, ColChildrenInvitedEvents),
		})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ReadGuestRowsFile is ReadGuestRows with the error prefixed by the file name.
func ReadGuestRowsFile(name string, r io.Reader) ([]domain.GuestImportRow, error) {
	rows, err := ReadGuestRows(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}
