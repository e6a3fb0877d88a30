package domain

import (
	"context"
	"fmt"
)

// GuestImportRow is one raw row of a guest list, before validation.
// Line is the 1-based line number in the source file, 0 when unknown.
type GuestImportRow struct {
	Line                  int
	Code                  string
	HasChildren           string
	HasSpouse             string
	Name                  string
	InvitedEvents         string
	ChildrenInvitedEvents string
}

// GuestImport is a validated row ready to be stored.
type GuestImport struct {
	Code                  string
	HasChildren           bool
	HasSpouse             bool
	Name                  string
	InvitedEvents         []string
	ChildrenInvitedEvents []string
}

// ImportRowResult describes what storing one row did.
type ImportRowResult struct {
	FamilyID           int64
	GuestID            int64
	InvitationsCreated int
	SkippedEvents      []string
}

// ImportReport summarizes an import run. On failure it covers the rows committed before it.
// swagger:model ImportReport
type ImportReport struct {
	RowsImported       int      `json:"rows_imported"`
	InvitationsCreated int      `json:"invitations_created"`
	SkippedEvents      []string `json:"skipped_events"`
}

// ImportRowError reports the row that stopped an import.
type ImportRowError struct {
	Row int
	Err error
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *ImportRowError) Unwrap() error { return e.Err }

// GuestImportRepository stores one imported row atomically.
type GuestImportRepository interface {
	ImportGuest(ctx context.Context, g *GuestImport) (*ImportRowResult, error)
}

// ImportService bulk-loads families, guests and invitations.
type ImportService interface {
	ImportGuests(ctx context.Context, rows []GuestImportRow) (*ImportReport, error)
}
