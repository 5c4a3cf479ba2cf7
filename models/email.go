package models

// Email kinds handled by the async email worker.
const (
	EmailKindBookingConfirmation = "booking_confirmation"
	EmailKindAdminBookingAlert   = "admin_booking_alert"
	EmailKindPaymentReceipt      = "payment_receipt"
)

// EmailPayload is the task payload for queued transactional email.
type EmailPayload struct {
	Kind            string  `json:"kind"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ServiceName     string  `json:"serviceName"`
	SlotLabel       string  `json:"slotLabel"`
	Timezone        string  `json:"timezone"`
	TotalSessions   int     `json:"totalSessions,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	PaymentIntentID string  `json:"paymentIntentId,omitempty"`
	ReceiptURL      string  `json:"receiptUrl,omitempty"`
}
