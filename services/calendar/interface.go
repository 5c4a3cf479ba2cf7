package calendar

import (
	"context"

	"superlife/services/availability"
)

// Attendee is an invitee on a calendar event.
type Attendee struct {
	Email       string
	DisplayName string
}

// EventInput describes a calendar event created for a booking.
type EventInput struct {
	Summary     string
	Description string
	Start       string // ISO-8601 instant
	End         string // ISO-8601 instant
	Timezone    string
	Attendees   []Attendee
	Metadata    map[string]string // stored as private extended properties
}

// CalendarService is the external calendar collaborator. It owns the OAuth
// credential lifecycle internally; callers treat it as opaque and fail closed
// when it errors.
type CalendarService interface {
	FetchBusyWindows(ctx context.Context, date string) ([]availability.Interval, error)
	CreateEvent(ctx context.Context, input EventInput) (string, error)
	UpdateEvent(ctx context.Context, eventID string, input EventInput) error
	DeleteEvent(ctx context.Context, eventID string) error
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) error
	Connected(ctx context.Context) (bool, error)
}
