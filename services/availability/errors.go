package availability

import "fmt"

// InvalidTimeInputError reports a malformed date, time of day, or an unknown
// timezone name.
type InvalidTimeInputError struct {
	Field string
	Value string
}

func (e *InvalidTimeInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// InvalidRequestError reports a bad availability query (unparsable date or
// non-positive duration). No partial work is performed.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// AvailabilityUnavailableError reports that a data source or the external
// calendar provider failed. The computation fails closed: slots based on
// incomplete busy data would risk double-booking.
type AvailabilityUnavailableError struct {
	Reason string
	Err    error
}

func (e *AvailabilityUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("availability unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("availability unavailable: %s", e.Reason)
}

func (e *AvailabilityUnavailableError) Unwrap() error {
	return e.Err
}
