package notification

import "html/template"

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Your booking is confirmed</h2>
  <p>Hi {{.ClientName}},</p>
  <p>Thank you for booking <strong>{{.ServiceName}}</strong>.</p>
  <p>
    <strong>When:</strong> {{.SlotLabel}} ({{.Timezone}})
  </p>
  {{if gt .TotalSessions 1}}
  <p>
    Your package includes {{.TotalSessions}} sessions. We will arrange the
    remaining sessions together after your first meeting.
  </p>
  {{end}}
  <p>If you need to reschedule, just reply to this email.</p>
  <p>Looking forward to meeting you!</p>
</div>
`))

var adminBookingAlertTmpl = template.Must(template.New("admin_booking_alert").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New booking</h2>
  <p><strong>Client:</strong> {{.ClientName}} ({{.ClientEmail}})</p>
  <p><strong>Service:</strong> {{.ServiceName}}</p>
  <p><strong>When:</strong> {{.SlotLabel}} ({{.Timezone}})</p>
  {{if gt .TotalSessions 1}}
  <p><strong>Package:</strong> {{.TotalSessions}} sessions</p>
  {{end}}
</div>
`))

var paymentReceiptTmpl = template.Must(template.New("payment_receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Payment received</h2>
  <p>Hi {{.ClientName}},</p>
  <p>
    We have received your payment of
    <strong>{{printf "%.2f" .Amount}} {{.Currency}}</strong>
    for <strong>{{.ServiceName}}</strong>.
  </p>
  {{if .ReceiptURL}}
  <p><a href="{{.ReceiptURL}}">View your Stripe receipt</a></p>
  {{end}}
  <p>Thank you!</p>
</div>
`))
