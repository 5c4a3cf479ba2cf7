package booking

import "fmt"

// BookingError is the typed error surface of the booking service.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationError",
		Message: msg,
	}
}

func NewPaymentError(msg string) error {
	return &BookingError{
		Code:    "paymentError",
		Message: msg,
	}
}

func NewNotFoundError(msg string) error {
	return &BookingError{
		Code:    "notFound",
		Message: msg,
	}
}
