package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPNotificationEventLine is one event of a submitted RSVP.
type RSVPNotificationEventLine struct {
	EventName        string
	Attending        bool
	NumberOfChildren int
	Comment          string
}

// RSVPNotificationEmailData holds data for the "new RSVP" email sent to the couple.
type RSVPNotificationEmailData struct {
	To        string
	GuestName string
	Events    []RSVPNotificationEventLine
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPNotification(ctx context.Context, data *RSVPNotificationEmailData) error
}
