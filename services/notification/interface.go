package notification

import (
	"context"

	"superlife/models"
)

// NotificationService defines methods for sending transactional email.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.EmailPayload) error
	SendAdminBookingAlert(ctx context.Context, payload models.EmailPayload) error
	SendPaymentReceipt(ctx context.Context, payload models.EmailPayload) error
}
