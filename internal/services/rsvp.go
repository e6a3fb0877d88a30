package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type rsvpService struct {
	guestRepo      domain.GuestRepository
	invitationRepo domain.InvitationRepository
	responseRepo   domain.ResponseRepository
	emailService   domain.EmailService
	notifyTo       string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService wires the guest RSVP flow. When emailService is nil or notifyTo is empty no
// notification is sent after a submission.
func NewRSVPService(
	guestRepo domain.GuestRepository,
	invitationRepo domain.InvitationRepository,
	responseRepo domain.ResponseRepository,
	emailService domain.EmailService,
	notifyTo string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		guestRepo:      guestRepo,
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
		emailService:   emailService,
		notifyTo:       notifyTo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Lookup resolves an RSVP code to the family's first guest, the events that guest is invited to
// and any responses already on file.
func (s *rsvpService) Lookup(ctx context.Context, code string) (*domain.GuestLogin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.InvalidInputf("rsvp code is required")
	}
	found, err := s.guestRepo.FindByRSVPCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("rsvp code %q: %w", code, err)
	}
	events, err := s.invitationRepo.ListEventsForGuest(ctx, found.Guest.ID)
	if err != nil {
		return nil, fmt.Errorf("list invited events: %w", err)
	}
	responses, err := s.responseRepo.ListByGuestID(ctx, found.Guest.ID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	if responses == nil {
		responses = []*domain.Response{}
	}
	return &domain.GuestLogin{
		FamilyID:    found.Family.ID,
		RSVPCode:    found.Family.RSVPCode,
		HasChildren: found.Family.HasChildren,
		HasSpouse:   found.Family.HasSpouse,
		GuestID:     found.Guest.ID,
		Name:        found.Guest.Name,
		Events:      events,
		Responses:   responses,
	}, nil
}

// Submit replaces every response of the guest with the given set.
func (s *rsvpService) Submit(ctx context.Context, guestID int64, inputs []domain.ResponseInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if guestID <= 0 {
		return domain.InvalidInputf("guest_id must be positive")
	}
	if len(inputs) == 0 {
		return domain.InvalidInputf("at least one response is required")
	}
	seen := make(map[int64]struct{}, len(inputs))
	for i, in := range inputs {
		if in.EventID <= 0 {
			return domain.InvalidInputf("responses[%d]: event_id is required", i)
		}
		if in.Attending == nil {
			return domain.InvalidInputf("responses[%d]: attending is required", i)
		}
		if _, dup := seen[in.EventID]; dup {
			return domain.InvalidInputf("responses[%d]: duplicate event_id %d", i, in.EventID)
		}
		seen[in.EventID] = struct{}{}
		if in.NumberOfChildren != nil && *in.NumberOfChildren < 0 {
			return domain.InvalidInputf("responses[%d]: number_of_children must not be negative", i)
		}
	}

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return fmt.Errorf("guest %d: %w", guestID, err)
	}
	invited, err := s.invitationRepo.ListEventsForGuest(ctx, guestID)
	if err != nil {
		return fmt.Errorf("list invited events: %w", err)
	}
	eventNames := make(map[int64]string, len(invited))
	for _, e := range invited {
		eventNames[e.ID] = e.Name
	}

	responses := make([]*domain.Response, 0, len(inputs))
	for i, in := range inputs {
		if _, ok := eventNames[in.EventID]; !ok {
			return domain.InvalidInputf("responses[%d]: guest %d is not invited to event %d", i, guestID, in.EventID)
		}
		responses = append(responses, toResponse(guestID, in))
	}
	if err := s.responseRepo.ReplaceForGuest(ctx, guestID, responses); err != nil {
		return fmt.Errorf("save responses: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp submitted", "guest_id", guestID, "responses", len(responses))

	s.notify(ctx, guest, inputs, eventNames)
	return nil
}

func toResponse(guestID int64, in domain.ResponseInput) *domain.Response {
	attending := *in.Attending
	comment := in.Comment
	return &domain.Response{
		GuestID:           guestID,
		EventID:           in.EventID,
		Attending:         &attending,
		ChildrenAttending: in.ChildrenAttending,
		NumberOfChildren:  in.NumberOfChildren,
		ChildrenComments:  in.ChildrenComments,
		Comment:           &comment,
	}
}

// notify never fails the submission; the responses are already committed.
func (s *rsvpService) notify(ctx context.Context, guest *domain.Guest, inputs []domain.ResponseInput, eventNames map[int64]string) {
	if s.emailService == nil || s.notifyTo == "" {
		return
	}
	data := &domain.RSVPNotificationEmailData{
		To:        s.notifyTo,
		GuestName: guest.Name,
		Events:    make([]domain.RSVPNotificationEventLine, 0, len(inputs)),
	}
	for _, in := range inputs {
		line := domain.RSVPNotificationEventLine{
			EventName: eventNames[in.EventID],
			Attending: *in.Attending,
			Comment:   in.Comment,
		}
		if *in.Attending && in.ChildrenAttending != nil && *in.ChildrenAttending && in.NumberOfChildren != nil {
			line.NumberOfChildren = *in.NumberOfChildren
		}
		data.Events = append(data.Events, line)
	}
	if err := s.emailService.SendRSVPNotification(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "guest_id", guest.ID, "err", err)
	}
}

// DeleteResponses clears the guest's responses. Invitations are kept.
func (s *rsvpService) DeleteResponses(ctx context.Context, guestID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if guestID <= 0 {
		return domain.InvalidInputf("guest id must be positive")
	}
	if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
		return fmt.Errorf("guest %d: %w", guestID, err)
	}
	n, err := s.responseRepo.DeleteByGuestID(ctx, guestID)
	if err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp responses deleted", "guest_id", guestID, "rows", n)
	return nil
}
