package email

import (
	"fmt"
)

// BookingEmailData contains the data needed for booking email templates.
type BookingEmailData struct {
	RecipientName string
	Email         string
	BusinessName  string
	ProviderName  string
	ServiceName   string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	EndTime       string // HH:MM
	PaymentURL    string
	AppName       string
}

// BuildBookingConfirmationEmail creates a confirmation email for a new booking.
func BuildBookingConfirmationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Bookora"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your booking at %s is confirmed", data.BusinessName)

	textBody := fmt.Sprintf(`Hi %s,

Your booking at %s is confirmed.

Provider: %s
Service:  %s
Date:     %s
Time:     %s - %s

Thanks,
The %s Team`,
		name, data.BusinessName, data.ProviderName, data.ServiceName,
		data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your booking at <strong>%s</strong> is confirmed.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Provider</td><td style="padding: 4px 0;">%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Service</td><td style="padding: 4px 0;">%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Date</td><td style="padding: 4px 0;">%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Time</td><td style="padding: 4px 0;">%s - %s</td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.BusinessName, data.ProviderName, data.ServiceName,
		data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPaymentLinkEmail creates an email carrying a payment link for a booking.
func BuildPaymentLinkEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Bookora"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Payment requested for your booking at %s", data.BusinessName)

	textBody := fmt.Sprintf(`Hi %s,

%s has requested payment for your booking on %s at %s.

Pay securely using the link below:
%s

Thanks,
The %s Team`,
		name, data.BusinessName, data.Date, data.StartTime, data.PaymentURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p><strong>%s</strong> has requested payment for your booking on %s at %s.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Pay Now</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.BusinessName, data.Date, data.StartTime, data.PaymentURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildBookingCancellationEmail creates a cancellation notice for a booking.
func BuildBookingCancellationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Bookora"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your booking at %s was cancelled", data.BusinessName)

	textBody := fmt.Sprintf(`Hi %s,

Your booking at %s on %s (%s - %s) has been cancelled.

If this was a mistake, please contact %s to rebook.

Thanks,
The %s Team`,
		name, data.BusinessName, data.Date, data.StartTime, data.EndTime,
		data.BusinessName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
	}
}
