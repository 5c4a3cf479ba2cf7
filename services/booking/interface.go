package booking

import (
	"context"

	"superlife/models"
)

// BookingService exposes the booking lifecycle: creation with payment
// verification, cancellation, admin status updates and listing.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
	CancelBooking(ctx context.Context, bookingID string) error
	RescheduleBooking(ctx context.Context, bookingID string, slot models.SlotPayload) error
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) error
}
