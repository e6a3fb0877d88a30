package services

import (
	"context"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.List(ctx)
}

// CreateEvent stores a new event. Date is optional; when set it must be YYYY-MM-DD.
func (s *eventService) CreateEvent(ctx context.Context, name, date string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	if name == "" {
		return nil, domain.InvalidInputf("event name is required")
	}
	if date != "" {
		if _, err := time.Parse(domain.EventDateLayout, date); err != nil {
			return nil, domain.InvalidInputf("event date %q must be YYYY-MM-DD", date)
		}
	}
	event := domain.NewEvent(name, date)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
