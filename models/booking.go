package models

import "time"

// Booking statuses. Cancelled bookings never occupy a busy window.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking represents a reserved coaching session.
type Booking struct {
	ID                    string    `bson:"id" json:"id"`
	ClientID              string    `bson:"client_id" json:"client_id"`
	ServiceType           string    `bson:"service_type" json:"service_type"`
	SessionDate           string    `bson:"session_date" json:"session_date"` // "YYYY-MM-DD" in the operating timezone
	SessionTime           string    `bson:"session_time" json:"session_time"` // "HH:MM:SS" wall clock in the operating timezone
	Duration              int       `bson:"duration" json:"duration"`         // minutes
	Status                string    `bson:"status" json:"status"`
	PaymentStatus         string    `bson:"payment_status" json:"payment_status"`
	StripePaymentIntentID string    `bson:"stripe_payment_intent_id,omitempty" json:"stripe_payment_intent_id,omitempty"`
	GoogleCalendarEventID string    `bson:"google_calendar_event_id,omitempty" json:"google_calendar_event_id,omitempty"`
	Notes                 string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt             time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updated_at"`
}

// PackageSession is one session of a multi-session coaching package. Only the
// first session is scheduled at booking time; the rest are arranged later.
type PackageSession struct {
	ID                    string    `bson:"id" json:"id"`
	BookingID             string    `bson:"booking_id" json:"booking_id"`
	SessionNumber         int       `bson:"session_number" json:"session_number"`
	SessionDate           string    `bson:"session_date,omitempty" json:"session_date,omitempty"`
	SessionTime           string    `bson:"session_time,omitempty" json:"session_time,omitempty"`
	Status                string    `bson:"status" json:"status"` // "scheduled" or "pending"
	GoogleCalendarEventID string    `bson:"google_calendar_event_id,omitempty" json:"google_calendar_event_id,omitempty"`
	CreatedAt             time.Time `bson:"created_at" json:"created_at"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Date   string
	Status string
}
