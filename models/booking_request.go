package models

// SlotPayload is the slot the client picked from the availability response.
type SlotPayload struct {
	Start    string `json:"start" binding:"required"`
	End      string `json:"end"`
	Label    string `json:"label"`
	Timezone string `json:"timezone"`
}

// BookingRequest is the inbound payload for creating a booking.
type BookingRequest struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	ServiceSlug     string      `json:"serviceSlug"`
	Slot            SlotPayload `json:"slot"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
}

// BookingConfirmation is returned once a booking has been created.
type BookingConfirmation struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
