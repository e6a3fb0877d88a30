package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type importService struct {
	repo           domain.GuestImportRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewImportService bounds each row's transaction by timeout; the import as a whole is bounded
// only by the caller's context.
func NewImportService(repo domain.GuestImportRepository, logger *slog.Logger, timeout time.Duration) domain.ImportService {
	return &importService{
		repo:           repo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ImportGuests stores rows in order, one transaction per row. The first failing row stops the
// import: rows before it stay committed and are counted in the returned report.
func (s *importService) ImportGuests(ctx context.Context, rows []domain.GuestImportRow) (*domain.ImportReport, error) {
	report := &domain.ImportReport{SkippedEvents: []string{}}
	skipped := make(map[string]struct{})
	for i, row := range rows {
		rowNum := row.Line
		if rowNum == 0 {
			rowNum = i + 1
		}
		g, err := ParseGuestImportRow(row)
		if err != nil {
			return report, &domain.ImportRowError{Row: rowNum, Err: err}
		}
		res, err := s.importRow(ctx, g)
		if err != nil {
			s.logger.ErrorContext(ctx, "guest import failed", "row", rowNum, "rsvp_code", g.Code, "err", err)
			return report, &domain.ImportRowError{Row: rowNum, Err: err}
		}
		report.RowsImported++
		report.InvitationsCreated += res.InvitationsCreated
		for _, name := range res.SkippedEvents {
			if _, ok := skipped[name]; ok {
				continue
			}
			skipped[name] = struct{}{}
			report.SkippedEvents = append(report.SkippedEvents, name)
		}
	}
	s.logger.InfoContext(ctx, "guest import finished",
		"rows", report.RowsImported,
		"invitations", report.InvitationsCreated,
		"skipped_events", len(report.SkippedEvents),
	)
	return report, nil
}

func (s *importService) importRow(ctx context.Context, g *domain.GuestImport) (*domain.ImportRowResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ImportGuest(ctx, g)
}

// ParseGuestImportRow validates a raw row: code and name are required and the flags must be booleans.
func ParseGuestImportRow(row domain.GuestImportRow) (*domain.GuestImport, error) {
	g := &domain.GuestImport{
		Code:                  strings.TrimSpace(row.Code),
		Name:                  strings.TrimSpace(row.Name),
		InvitedEvents:         SplitEventList(row.InvitedEvents),
		ChildrenInvitedEvents: SplitEventList(row.ChildrenInvitedEvents),
	}
	if g.Code == "" {
		return nil, domain.InvalidInputf("rsvp_code is required")
	}
	if g.Name == "" {
		return nil, domain.InvalidInputf("name is required")
	}
	var err error
	if g.HasChildren, err = ParseFlag(row.HasChildren); err != nil {
		return nil, domain.InvalidInputf("has_children: %v", err)
	}
	if g.HasSpouse, err = ParseFlag(row.HasSpouse); err != nil {
		return nil, domain.InvalidInputf("has_spouse: %v", err)
	}
	return g, nil
}

// ParseFlag accepts 1/0, true/false, yes/no and y/n in any case. Empty is false.
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y":
		return true, nil
	default:
		return false, fmt.Errorf("%q is not a boolean", s)
	}
}

// SplitEventList splits a comma-separated list of event names, dropping blanks.
func SplitEventList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}
