package availability

import (
	"context"
	"errors"
	"testing"

	"superlife/models"
)

type ruleStoreStub struct {
	rules []models.AvailabilityRule
	err   error
}

func (s *ruleStoreStub) GetActiveByWeekday(ctx context.Context, dayOfWeek int) ([]models.AvailabilityRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.AvailabilityRule
	for _, r := range s.rules {
		if r.Active && r.DayOfWeek == dayOfWeek {
			out = append(out, r)
		}
	}
	return out, nil
}

type blockedStoreStub struct {
	blocked []models.BlockedDate
	err     error
}

func (s *blockedStoreStub) GetByDate(ctx context.Context, date string) ([]models.BlockedDate, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.BlockedDate
	for _, b := range s.blocked {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

type bookingStoreStub struct {
	bookings []models.Booking
	err      error
}

func (s *bookingStoreStub) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.SessionDate == date && b.Status != models.BookingStatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

type calendarStub struct {
	windows []Interval
	err     error
}

func (s *calendarStub) FetchBusyWindows(ctx context.Context, date string) ([]Interval, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.windows, nil
}

func newTestService(rules *ruleStoreStub, blocked *blockedStoreStub, bookings *bookingStoreStub, cal *calendarStub) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Rules:    rules,
		Blocked:  blocked,
		Bookings: bookings,
		Calendar: cal,
		Cfg: Config{
			Timezone:      "Europe/London",
			TimezoneLabel: "UK Time",
			SlotStepMin:   60,
		},
	}
}

// 2025-03-03 is a Monday in GMT.
var mondayRule = models.AvailabilityRule{
	DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", Active: true,
}

func TestComputeAvailability_HappyPath(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{},
		&calendarStub{},
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[0].Start != "2025-03-03T09:00:00Z" {
		t.Errorf("first slot starts at %s, want 2025-03-03T09:00:00Z", slots[0].Start)
	}
}

func TestComputeAvailability_LocalBookingExcluded(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{bookings: []models.Booking{{
			SessionDate: "2025-03-03",
			SessionTime: "10:00:00",
			Duration:    60,
			Status:      models.BookingStatusConfirmed,
		}}},
		&calendarStub{},
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"09:00", "11:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
	for i, want := range wantLabels {
		if slots[i].Label != want {
			t.Errorf("slot %d: got %q, want %q", i, slots[i].Label, want)
		}
	}
}

func TestComputeAvailability_CancelledBookingIgnored(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{bookings: []models.Booking{{
			SessionDate: "2025-03-03",
			SessionTime: "10:00:00",
			Duration:    60,
			Status:      models.BookingStatusCancelled,
		}}},
		&calendarStub{},
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("cancelled bookings must not occupy a window: got %d slots, want 3", len(slots))
	}
}

func TestComputeAvailability_BlockedDate(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{blocked: []models.BlockedDate{{Date: "2025-03-03", Reason: "away"}}},
		&bookingStoreStub{},
		&calendarStub{},
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if err != nil {
		t.Fatalf("a blocked date is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots on a blocked date, want 0", len(slots))
	}
}

func TestComputeAvailability_OffDayEmpty(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{},
		&calendarStub{},
	)

	// 2025-03-04 is a Tuesday; no rule matches.
	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-04", 60)
	if err != nil {
		t.Fatalf("an off day is not an error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Errorf("expected an empty, non-nil slot list, got %#v", slots)
	}
}

func TestComputeAvailability_CalendarFailureFailsClosed(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{},
		&calendarStub{err: errors.New("freebusy query failed: 401")},
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if slots != nil {
		t.Error("a provider failure must never return slots")
	}
	var unavailable *AvailabilityUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected AvailabilityUnavailableError, got %v", err)
	}
}

func TestComputeAvailability_StoreFailureFailsClosed(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{err: errors.New("connection reset")},
		&calendarStub{},
	)

	_, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	var unavailable *AvailabilityUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected AvailabilityUnavailableError, got %v", err)
	}
}

func TestComputeAvailability_ExternalBusyWindow(t *testing.T) {
	svc := newTestService(
		&ruleStoreStub{rules: []models.AvailabilityRule{mondayRule}},
		&blockedStoreStub{},
		&bookingStoreStub{},
		&calendarStub{windows: []Interval{{Start: 540, End: 600}}}, // 09:00-10:00 busy
	)

	slots, err := svc.ComputeAvailability(context.Background(), "2025-03-03", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"10:00", "11:00"}
	if len(slots) != len(wantLabels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(wantLabels))
	}
	for i, want := range wantLabels {
		if slots[i].Label != want {
			t.Errorf("slot %d: got %q, want %q", i, slots[i].Label, want)
		}
	}
}

func TestComputeAvailability_InvalidRequest(t *testing.T) {
	svc := newTestService(&ruleStoreStub{}, &blockedStoreStub{}, &bookingStoreStub{}, &calendarStub{})

	cases := []struct {
		name     string
		date     string
		duration int
	}{
		{"malformed date", "03-03-2025", 60},
		{"impossible date", "2025-02-30", 60},
		{"zero duration", "2025-03-03", 0},
		{"negative duration", "2025-03-03", -15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.ComputeAvailability(context.Background(), c.date, c.duration)
			var invalid *InvalidRequestError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidRequestError, got %v", err)
			}
		})
	}
}
