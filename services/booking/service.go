package booking

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	bookingRepo "superlife/database/repository/booking"
	clientRepo "superlife/database/repository/client"
	"superlife/models"
	"superlife/services/calendar"
	"superlife/services/tasks"
	"superlife/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// TaskEnqueuer is satisfied by *asynq.Client; tests inject a stub.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Config carries booking-flow settings.
type Config struct {
	Timezone string // operating timezone, session date/time are stored in it
	Currency string // catalogue currency, minor-unit conversion
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Clients  clientRepo.ClientRepository
	Calendar calendar.CalendarService
	Payments PaymentVerifier
	Queue    TaskEnqueuer
	Cfg      Config
}

// CreateBooking validates the request, verifies payment for priced services,
// persists the booking, creates the calendar event (best effort) and queues
// the confirmation emails.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	service, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	slotStart, err := time.Parse(time.RFC3339, req.Slot.Start)
	if err != nil {
		return nil, NewValidationError("invalid slot start time")
	}

	// Payment is verified before anything is written. "free" marks the
	// zero-price flow that skips Stripe entirely.
	var verification *PaymentVerification
	paid := service.Price == 0
	if service.Price > 0 && req.PaymentIntentID != "" && req.PaymentIntentID != "free" {
		expected := int64(math.Round(service.Price * 100))
		verification, err = s.Payments.VerifyIntent(ctx, req.PaymentIntentID, expected)
		if err != nil {
			return nil, err
		}
		paid = true
	}

	client, err := s.getOrCreateClient(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("unable to create client: %w", err)
	}

	// Session date and time are stored as wall clock in the operating
	// timezone so the availability math sees the same axis it booked on.
	loc, err := time.LoadLocation(s.Cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bad operating timezone %q: %w", s.Cfg.Timezone, err)
	}
	local := slotStart.In(loc)

	booking := models.Booking{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		ServiceType: service.Slug,
		SessionDate: local.Format("2006-01-02"),
		SessionTime: local.Format("15:04:05"),
		Duration:    service.Duration,
		Status:      models.BookingStatusPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	booking.PaymentStatus = models.PaymentStatusPending
	if paid {
		booking.Status = models.BookingStatusConfirmed
		booking.PaymentStatus = models.PaymentStatusPaid
	}
	if req.PaymentIntentID != "" && req.PaymentIntentID != "free" {
		booking.StripePaymentIntentID = req.PaymentIntentID
	}

	if err := s.Bookings.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("unable to create booking: %w", err)
	}

	if service.Sessions > 1 {
		if err := s.insertPackageSessions(ctx, booking, service.Sessions); err != nil {
			logger.Error("failed to create package sessions",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	s.createCalendarEvent(ctx, booking, service, req)
	s.enqueueBookingEmails(booking, service, req, verification)

	return &models.BookingConfirmation{
		BookingID: booking.ID,
		Status:    booking.Status,
	}, nil
}

// CancelBooking marks the booking cancelled and removes its calendar event.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	return s.UpdateBookingStatus(ctx, bookingID, models.BookingStatusCancelled)
}

// RescheduleBooking moves a booking to a new slot and patches the calendar
// event. Cancelled bookings cannot be rescheduled.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, bookingID string, slot models.SlotPayload) error {
	logger := utils.GetLogger()

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return NewNotFoundError("booking not found")
	}
	if booking.Status == models.BookingStatusCancelled {
		return NewValidationError("cancelled bookings cannot be rescheduled")
	}

	newStart, err := time.Parse(time.RFC3339, slot.Start)
	if err != nil {
		return NewValidationError("invalid slot start time")
	}

	loc, err := time.LoadLocation(s.Cfg.Timezone)
	if err != nil {
		return fmt.Errorf("bad operating timezone %q: %w", s.Cfg.Timezone, err)
	}
	local := newStart.In(loc)

	if err := s.Bookings.UpdateSession(ctx, bookingID, local.Format("2006-01-02"), local.Format("15:04:05")); err != nil {
		return err
	}

	if booking.GoogleCalendarEventID != "" {
		end := slot.End
		if end == "" {
			end = newStart.Add(time.Duration(booking.Duration) * time.Minute).Format(time.RFC3339)
		}
		err := s.Calendar.UpdateEvent(ctx, booking.GoogleCalendarEventID, calendar.EventInput{
			Start:    slot.Start,
			End:      end,
			Timezone: s.Cfg.Timezone,
		})
		if err != nil {
			logger.Error("failed to move calendar event for rescheduled booking",
				zap.String("booking", bookingID), zap.Error(err))
		}
	}
	return nil
}

// UpdateBookingStatus applies an admin status transition. Cancellation also
// deletes the calendar event, best effort.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	logger := utils.GetLogger()

	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled,
		models.BookingStatusNoShow:
	default:
		return NewValidationError(fmt.Sprintf("unknown booking status %q", status))
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return NewNotFoundError("booking not found")
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return err
	}

	if status == models.BookingStatusCancelled && booking.GoogleCalendarEventID != "" {
		if err := s.Calendar.DeleteEvent(ctx, booking.GoogleCalendarEventID); err != nil {
			logger.Error("failed to delete calendar event for cancelled booking",
				zap.String("booking", bookingID), zap.Error(err))
		}
	}
	return nil
}

// ListBookings returns bookings for the admin table.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Bookings.List(ctx, filter)
}

// ConfirmPayment reacts to an asynchronous payment signal (Stripe webhook)
// by marking the matching booking paid and confirmed.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, paymentIntentID string) error {
	booking, err := s.Bookings.MarkPaidByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("booking payment confirmed",
		zap.String("booking", booking.ID),
		zap.String("intent", paymentIntentID))
	return nil
}

func (s *DefaultBookingService) validateRequest(req models.BookingRequest) (models.ServicePlan, error) {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return models.ServicePlan{}, NewValidationError("name is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return models.ServicePlan{}, NewValidationError("valid email is required")
	}
	service, ok := models.ServiceBySlug(req.ServiceSlug)
	if !ok {
		return models.ServicePlan{}, NewValidationError("invalid service type")
	}
	if req.Slot.Start == "" {
		return models.ServicePlan{}, NewValidationError("time slot is required")
	}
	return service, nil
}

func (s *DefaultBookingService) getOrCreateClient(ctx context.Context, req models.BookingRequest) (*models.Client, error) {
	existing, err := s.Clients.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	client := models.Client{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Clients.Insert(ctx, client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *DefaultBookingService) insertPackageSessions(ctx context.Context, booking models.Booking, total int) error {
	sessions := make([]models.PackageSession, 0, total)
	for number := 1; number <= total; number++ {
		session := models.PackageSession{
			ID:            uuid.New().String(),
			BookingID:     booking.ID,
			SessionNumber: number,
			Status:        "pending",
			CreatedAt:     time.Now(),
		}
		// Only the first session is scheduled now; the rest are arranged
		// after the first meeting.
		if number == 1 {
			session.SessionDate = booking.SessionDate
			session.SessionTime = booking.SessionTime
			session.Status = "scheduled"
		}
		sessions = append(sessions, session)
	}
	return s.Bookings.InsertPackageSessions(ctx, sessions)
}

// createCalendarEvent is best effort: the booking stands even when the
// calendar write fails, and the failure is logged for manual follow-up.
func (s *DefaultBookingService) createCalendarEvent(ctx context.Context, booking models.Booking, service models.ServicePlan, req models.BookingRequest) {
	logger := utils.GetLogger()

	eventID, err := s.Calendar.CreateEvent(ctx, calendar.EventInput{
		Summary:     fmt.Sprintf("%s - %s", service.Name, req.Name),
		Description: buildEventDescription(req, service),
		Start:       req.Slot.Start,
		End:         req.Slot.End,
		Timezone:    s.Cfg.Timezone,
		Attendees:   []calendar.Attendee{{Email: req.Email, DisplayName: req.Name}},
		Metadata: map[string]string{
			"booking_id":   booking.ID,
			"service_slug": service.Slug,
		},
	})
	if err != nil {
		logger.Error("failed to create calendar event",
			zap.String("booking", booking.ID), zap.Error(err))
		return
	}

	if err := s.Bookings.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
		logger.Error("failed to store calendar event id",
			zap.String("booking", booking.ID), zap.Error(err))
	}
	if service.Sessions > 1 {
		if err := s.Bookings.SetFirstPackageSessionEvent(ctx, booking.ID, eventID); err != nil {
			logger.Error("failed to link calendar event to first package session",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}
}

// enqueueBookingEmails queues the client confirmation, the admin alert and,
// for paid bookings with a verification, the payment receipt. Email delivery
// never blocks or fails the booking.
func (s *DefaultBookingService) enqueueBookingEmails(booking models.Booking, service models.ServicePlan, req models.BookingRequest, verification *PaymentVerification) {
	logger := utils.GetLogger()

	base := models.EmailPayload{
		ClientName:    req.Name,
		ClientEmail:   req.Email,
		ServiceName:   service.Name,
		SlotLabel:     req.Slot.Label,
		Timezone:      req.Slot.Timezone,
		TotalSessions: service.Sessions,
	}

	payloads := []models.EmailPayload{
		withKind(base, models.EmailKindBookingConfirmation),
		withKind(base, models.EmailKindAdminBookingAlert),
	}

	if verification != nil {
		receipt := withKind(base, models.EmailKindPaymentReceipt)
		receipt.Amount = service.Price
		receipt.Currency = verification.Currency
		receipt.PaymentIntentID = booking.StripePaymentIntentID
		receipt.ReceiptURL = verification.ReceiptURL
		payloads = append(payloads, receipt)
	}

	for _, payload := range payloads {
		task, opts, err := tasks.NewEmailTask(payload)
		if err != nil {
			logger.Error("failed to build email task",
				zap.String("kind", payload.Kind), zap.Error(err))
			continue
		}
		if _, err := s.Queue.Enqueue(task, opts...); err != nil {
			logger.Error("failed to enqueue email task",
				zap.String("kind", payload.Kind),
				zap.String("booking", booking.ID),
				zap.Error(err))
		}
	}
}

func withKind(payload models.EmailPayload, kind string) models.EmailPayload {
	payload.Kind = kind
	return payload
}

func buildEventDescription(req models.BookingRequest, service models.ServicePlan) string {
	lines := []string{
		fmt.Sprintf("Service: %s", service.Name),
		fmt.Sprintf("Client: %s (%s)", req.Name, req.Email),
	}
	if req.Phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", req.Phone))
	}
	if req.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", req.Notes))
	}
	if service.Sessions > 1 {
		lines = append(lines, fmt.Sprintf(
			"Package includes %d sessions. Remaining sessions will be scheduled after the first meeting.",
			service.Sessions))
	}
	return strings.Join(lines, "\n")
}
