package notification

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"superlife/models"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  []byte
}

func newTestMailer(cfg SMTPConfig) (*SMTPNotificationService, *[]sentMail) {
	var sent []sentMail
	svc := &SMTPNotificationService{
		cfg: cfg,
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: msg})
			return nil
		},
	}
	return svc, &sent
}

func testConfig() SMTPConfig {
	return SMTPConfig{
		Host:  "smtp.example.com",
		Port:  "587",
		From:  "bookings@example.com",
		Admin: "coach@example.com",
	}
}

func testPayload() models.EmailPayload {
	return models.EmailPayload{
		Kind:        models.EmailKindBookingConfirmation,
		ClientName:  "Alice Example",
		ClientEmail: "alice@example.com",
		ServiceName: "Free Initial Call",
		SlotLabel:   "09:00",
		Timezone:    "UK Time",
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	svc, sent := newTestMailer(testConfig())

	if err := svc.SendBookingConfirmation(context.Background(), testPayload()); err != nil {
		t.Fatalf("SendBookingConfirmation: %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(*sent))
	}
	mail := (*sent)[0]
	if mail.addr != "smtp.example.com:587" {
		t.Errorf("addr = %q", mail.addr)
	}
	if len(mail.to) != 1 || mail.to[0] != "alice@example.com" {
		t.Errorf("to = %v, want the client", mail.to)
	}
	body := string(mail.msg)
	for _, want := range []string{
		"Subject: Booking confirmed: Free Initial Call",
		"Content-Type: text/html",
		"Alice Example",
		"09:00",
		"UK Time",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSendBookingConfirmationPackageMentionsSessions(t *testing.T) {
	svc, sent := newTestMailer(testConfig())

	payload := testPayload()
	payload.ServiceName = "Breakthrough Coaching Package – 4 Sessions"
	payload.TotalSessions = 4

	if err := svc.SendBookingConfirmation(context.Background(), payload); err != nil {
		t.Fatalf("SendBookingConfirmation: %v", err)
	}
	body := string((*sent)[0].msg)
	if !strings.Contains(body, "4 sessions") {
		t.Errorf("package confirmation should mention the session count")
	}
}

func TestSendAdminBookingAlertGoesToAdmin(t *testing.T) {
	svc, sent := newTestMailer(testConfig())

	if err := svc.SendAdminBookingAlert(context.Background(), testPayload()); err != nil {
		t.Fatalf("SendAdminBookingAlert: %v", err)
	}
	if (*sent)[0].to[0] != "coach@example.com" {
		t.Errorf("admin alert went to %v", (*sent)[0].to)
	}
}

func TestSendAdminBookingAlertSkippedWithoutAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Admin = ""
	svc, sent := newTestMailer(cfg)

	if err := svc.SendAdminBookingAlert(context.Background(), testPayload()); err != nil {
		t.Fatalf("missing admin address must not be an error: %v", err)
	}
	if len(*sent) != 0 {
		t.Errorf("no mail should be sent without an admin address")
	}
}

func TestSendPaymentReceipt(t *testing.T) {
	svc, sent := newTestMailer(testConfig())

	payload := testPayload()
	payload.Kind = models.EmailKindPaymentReceipt
	payload.Amount = 69
	payload.Currency = "GBP"
	payload.ReceiptURL = "https://pay.stripe.example/receipt/123"

	if err := svc.SendPaymentReceipt(context.Background(), payload); err != nil {
		t.Fatalf("SendPaymentReceipt: %v", err)
	}
	body := string((*sent)[0].msg)
	for _, want := range []string{"69.00", "GBP", "https://pay.stripe.example/receipt/123"} {
		if !strings.Contains(body, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}
