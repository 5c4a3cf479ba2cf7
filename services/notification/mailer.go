package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"superlife/models"
	"superlife/utils"

	"go.uber.org/zap"
)

// SMTPConfig carries the mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Admin    string // recipient of admin alerts
}

// sendFunc matches smtp.SendMail; tests swap it out.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotificationService sends transactional email over SMTP.
type SMTPNotificationService struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPNotificationService(cfg SMTPConfig) (*SMTPNotificationService, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("notification service initialization error: SMTP host and sender are required")
	}
	return &SMTPNotificationService{cfg: cfg, send: smtp.SendMail}, nil
}

// SendBookingConfirmation emails the client their booking details.
func (s *SMTPNotificationService) SendBookingConfirmation(ctx context.Context, payload models.EmailPayload) error {
	subject := fmt.Sprintf("Booking confirmed: %s", payload.ServiceName)
	return s.deliver(ctx, payload.ClientEmail, subject, bookingConfirmationTmpl, payload)
}

// SendAdminBookingAlert notifies the coach of a new booking.
func (s *SMTPNotificationService) SendAdminBookingAlert(ctx context.Context, payload models.EmailPayload) error {
	if s.cfg.Admin == "" {
		utils.GetLogger().Warn("admin email not configured, skipping booking alert")
		return nil
	}
	subject := fmt.Sprintf("New booking: %s (%s)", payload.ServiceName, payload.ClientName)
	return s.deliver(ctx, s.cfg.Admin, subject, adminBookingAlertTmpl, payload)
}

// SendPaymentReceipt emails the client a payment receipt.
func (s *SMTPNotificationService) SendPaymentReceipt(ctx context.Context, payload models.EmailPayload) error {
	subject := fmt.Sprintf("Payment received: %s", payload.ServiceName)
	return s.deliver(ctx, payload.ClientEmail, subject, paymentReceiptTmpl, payload)
}

func (s *SMTPNotificationService) deliver(ctx context.Context, to, subject string, tmpl *template.Template, payload models.EmailPayload) error {
	if to == "" {
		return fmt.Errorf("deliver: empty recipient for %q", subject)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, payload); err != nil {
		return fmt.Errorf("deliver: render %s: %w", tmpl.Name(), err)
	}

	msg := buildMessage(s.cfg.From, to, subject, body.Bytes())

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := s.cfg.Host + ":" + s.cfg.Port

	if err := s.send(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		utils.GetLogger().Error("failed to send email",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("deliver: send to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject string, body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}
