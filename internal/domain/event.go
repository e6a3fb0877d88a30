package domain

import "context"

// EventDateLayout is the layout of Event.Date when one is set.
const EventDateLayout = "2006-01-02"

// Event is a wedding sub-event (ceremony, mehndi, reception, ...).
// swagger:model Event
type Event struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, date string) *Event {
	return &Event{Name: name, Date: date}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines admin operations on events.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	CreateEvent(ctx context.Context, name, date string) (*Event, error)
}
