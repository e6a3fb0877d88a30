package services

import (
	"context"
	"fmt"
	"time"

	"weddingrsvp/internal/domain"
)

type reportService struct {
	eventRepo      domain.EventRepository
	invitationRepo domain.InvitationRepository
	responseRepo   domain.ResponseRepository
	contextTimeout time.Duration
}

func NewReportService(
	eventRepo domain.EventRepository,
	invitationRepo domain.InvitationRepository,
	responseRepo domain.ResponseRepository,
	timeout time.Duration,
) domain.ReportService {
	return &reportService{
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
		contextTimeout: timeout,
	}
}

func (s *reportService) EventTotals(ctx context.Context) ([]*domain.EventTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	statuses, err := s.invitationRepo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitation statuses: %w", err)
	}
	return ComputeEventTotals(events, statuses), nil
}

func (s *reportService) EventGuestList(ctx context.Context) ([]*domain.GuestListEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	statuses, err := s.invitationRepo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitation statuses: %w", err)
	}
	return BuildEventGuestList(statuses), nil
}

func (s *reportService) FormattedResponses(ctx context.Context) ([]*domain.FormattedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	details, err := s.responseRepo.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return FormatResponses(details), nil
}

// FormatResponses renders stored responses for display, keeping their order.
// NULL booleans render as Unknown, a NULL children count as 0 and NULL text as "".
func FormatResponses(details []*domain.ResponseDetail) []*domain.FormattedResponse {
	out := make([]*domain.FormattedResponse, 0, len(details))
	for _, d := range details {
		out = append(out, &domain.FormattedResponse{
			ID:                d.ID,
			GuestName:         d.GuestName,
			EventName:         d.EventName,
			Attending:         yesNoUnknown(d.Attending),
			ChildrenAttending: yesNoUnknown(d.ChildrenAttending),
			NumberOfChildren:  valueOr(d.NumberOfChildren, 0),
			ChildrenComments:  valueOr(d.ChildrenComments, ""),
			Comment:           valueOr(d.Comment, ""),
		})
	}
	return out
}

// ComputeEventTotals returns one entry per event, in the order of events.
// A guest counts once per event however many response rows it has; a spouse adds one adult.
// Children count only on responses that are attending with children attending.
func ComputeEventTotals(events []*domain.Event, statuses []*domain.InvitationStatus) []*domain.EventTotals {
	byEvent := make(map[int64]*domain.EventTotals, len(events))
	out := make([]*domain.EventTotals, 0, len(events))
	for _, e := range events {
		t := &domain.EventTotals{EventID: e.ID, EventName: e.Name, EventDate: e.Date}
		byEvent[e.ID] = t
		out = append(out, t)
	}

	type key struct{ eventID, guestID int64 }
	counted := make(map[key]struct{})
	for _, st := range statuses {
		t, ok := byEvent[st.EventID]
		if !ok || !isAttending(st.Response) {
			continue
		}
		k := key{st.EventID, st.GuestID}
		if _, dup := counted[k]; !dup {
			counted[k] = struct{}{}
			t.TotalAdults++
			if st.HasSpouse {
				t.TotalAdults++
			}
		}
		t.TotalChildren += childrenCount(st.Response)
	}
	for _, t := range out {
		t.TotalAttendees = t.TotalAdults + t.TotalChildren
	}
	return out
}

// BuildEventGuestList returns one entry per invitation status, in order.
func BuildEventGuestList(statuses []*domain.InvitationStatus) []*domain.GuestListEntry {
	out := make([]*domain.GuestListEntry, 0, len(statuses))
	for _, st := range statuses {
		entry := &domain.GuestListEntry{
			EventID:         st.EventID,
			EventName:       st.EventName,
			GuestID:         st.GuestID,
			GuestName:       st.GuestName,
			RSVPCode:        st.RSVPCode,
			HasSpouse:       st.HasSpouse,
			HasChildren:     st.HasChildren,
			AttendingStatus: domain.StatusPending,
		}
		if r := st.Response; r != nil {
			entry.AttendingStatus = domain.StatusNo
			if isAttending(r) {
				entry.AttendingStatus = domain.StatusYes
				entry.AdultCount = 1
				if st.HasSpouse {
					entry.AdultCount = 2
				}
			}
			entry.ChildrenCount = childrenCount(r)
			entry.ChildrenDetails = valueOr(r.ChildrenComments, "")
			entry.Comments = valueOr(r.Comment, "")
		}
		out = append(out, entry)
	}
	return out
}

func isAttending(r *domain.Response) bool {
	return r != nil && r.Attending != nil && *r.Attending
}

func childrenCount(r *domain.Response) int {
	if !isAttending(r) || r.ChildrenAttending == nil || !*r.ChildrenAttending || r.NumberOfChildren == nil {
		return 0
	}
	return *r.NumberOfChildren
}

func yesNoUnknown(b *bool) string {
	switch {
	case b == nil:
		return domain.StatusUnknown
	case *b:
		return domain.StatusYes
	default:
		return domain.StatusNo
	}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
