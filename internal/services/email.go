package services

import (
	"context"
	"fmt"

	"weddingrsvp/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRSVPNotification tells the couple that a guest submitted an RSVP, using the "rsvp_notification" template.
func (s *emailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp notification data is nil")
	}
	if data.To == "" {
		return fmt.Errorf("rsvp notification recipient is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_notification template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp notification: %w", err)
	}
	return nil
}
