package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"superlife/models"
	"superlife/utils"

	"go.uber.org/zap"
)

// RuleStore reads the recurring availability rules for a weekday.
type RuleStore interface {
	GetActiveByWeekday(ctx context.Context, dayOfWeek int) ([]models.AvailabilityRule, error)
}

// BlockedDateStore reads manual all-day blocks by exact date.
type BlockedDateStore interface {
	GetByDate(ctx context.Context, date string) ([]models.BlockedDate, error)
}

// BookingStore reads the non-cancelled local bookings for a date.
type BookingStore interface {
	GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// BusyWindowProvider is the external calendar collaborator. It owns its own
// credential refresh lifecycle; this service only sees busy minutes for the
// queried day.
type BusyWindowProvider interface {
	FetchBusyWindows(ctx context.Context, date string) ([]Interval, error)
}

// Service computes bookable slots for a date.
type Service interface {
	ComputeAvailability(ctx context.Context, date string, durationMinutes int) ([]models.Slot, error)
}

// Config carries the fixed scheduling parameters.
type Config struct {
	Timezone      string // IANA zone the rules are authored in, e.g. "Europe/London"
	TimezoneLabel string // display string attached to every slot, e.g. "UK Time"
	SlotStepMin   int    // offering cadence in minutes, independent of duration
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Rules    RuleStore
	Blocked  BlockedDateStore
	Bookings BookingStore
	Calendar BusyWindowProvider
	Cfg      Config
}

// ComputeAvailability returns the ordered bookable slots for the date.
//
// The three local reads and the calendar busy query are issued concurrently
// and all four must succeed: a failed source fails the whole computation
// rather than degrading to incomplete busy data. An off weekday and an
// all-day block are legitimate empty results, not errors.
func (s *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, date string, durationMinutes int) ([]models.Slot, error) {
	logger := utils.GetLogger()

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, &InvalidRequestError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	if durationMinutes <= 0 {
		return nil, &InvalidRequestError{Message: "duration must be a positive number of minutes"}
	}

	var (
		wg sync.WaitGroup

		rules    []models.AvailabilityRule
		blocked  []models.BlockedDate
		bookings []models.Booking
		external []Interval

		rulesErr, blockedErr, bookingsErr, externalErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		rules, rulesErr = s.Rules.GetActiveByWeekday(ctx, int(day.Weekday()))
	}()
	go func() {
		defer wg.Done()
		blocked, blockedErr = s.Blocked.GetByDate(ctx, date)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = s.Bookings.GetActiveByDate(ctx, date)
	}()
	go func() {
		defer wg.Done()
		external, externalErr = s.Calendar.FetchBusyWindows(ctx, date)
	}()
	wg.Wait()

	if externalErr != nil {
		logger.Error("availability: calendar busy query failed",
			zap.String("date", date), zap.Error(externalErr))
		return nil, &AvailabilityUnavailableError{Reason: "calendar busy lookup failed", Err: externalErr}
	}
	if rulesErr != nil {
		logger.Error("availability: rule load failed", zap.String("date", date), zap.Error(rulesErr))
		return nil, &AvailabilityUnavailableError{Reason: "availability rules unavailable", Err: rulesErr}
	}
	if blockedErr != nil {
		logger.Error("availability: blocked-date load failed", zap.String("date", date), zap.Error(blockedErr))
		return nil, &AvailabilityUnavailableError{Reason: "blocked dates unavailable", Err: blockedErr}
	}
	if bookingsErr != nil {
		logger.Error("availability: booking load failed", zap.String("date", date), zap.Error(bookingsErr))
		return nil, &AvailabilityUnavailableError{Reason: "bookings unavailable", Err: bookingsErr}
	}

	open, err := OpenIntervalsFor(day.Weekday(), rules)
	if err != nil {
		logger.Error("availability: bad rule configuration", zap.String("date", date), zap.Error(err))
		return nil, &AvailabilityUnavailableError{Reason: "availability rules misconfigured", Err: err}
	}
	if len(open) == 0 {
		// An off day, not a failure.
		return []models.Slot{}, nil
	}

	busy, err := AggregateBusy(blocked, bookings, external, date)
	if err != nil {
		logger.Error("availability: bad booking data", zap.String("date", date), zap.Error(err))
		return nil, &AvailabilityUnavailableError{Reason: "booking data malformed", Err: err}
	}

	slots, err := GenerateSlots(open, busy, durationMinutes, s.Cfg.SlotStepMin, date, s.Cfg.Timezone, s.Cfg.TimezoneLabel)
	if err != nil {
		return nil, &AvailabilityUnavailableError{Reason: "slot generation failed", Err: err}
	}
	return slots, nil
}
