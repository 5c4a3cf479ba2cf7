package availability

import "superlife/models"

// BusyResult carries every window during which no slot may be offered, or the
// all-day marker when the whole target date is blocked.
type BusyResult struct {
	AllDayBlocked bool
	Windows       []Interval
}

// AggregateBusy merges the three busy sources for targetDate: manual blocked
// dates, local bookings, and external calendar windows (already projected to
// local minutes). A blocked-date match short-circuits everything: the caller
// must return zero slots without walking any interval.
//
// Windows are concatenated unsorted; overlap testing does not care about
// order. Cancelled bookings occupy nothing.
func AggregateBusy(blocked []models.BlockedDate, bookings []models.Booking, external []Interval, targetDate string) (BusyResult, error) {
	for _, b := range blocked {
		if b.Date == targetDate {
			return BusyResult{AllDayBlocked: true}, nil
		}
	}

	windows := make([]Interval, 0, len(bookings)+len(external))
	for _, booking := range bookings {
		if booking.Status == models.BookingStatusCancelled {
			continue
		}
		start, err := timeOfDayToMinutes(booking.SessionTime)
		if err != nil {
			return BusyResult{}, err
		}
		windows = append(windows, Interval{Start: start, End: start + booking.Duration})
	}
	windows = append(windows, external...)

	return BusyResult{Windows: windows}, nil
}
