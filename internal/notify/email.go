package notify

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers a single email. Implementations can be swapped
// without changing the dispatcher.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage is an email with an optional calendar attachment.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
	ICS     string // iCalendar document, attached when non-empty
}

// SendGridConfig holds SendGrid sender settings.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender creates a SendGrid email sender.
func NewSendGridSender(cfg SendGridConfig) (*SendGridSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("notify: sendgrid api key is empty")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("notify: sendgrid from email is empty")
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}, nil
}

// Send sends the message, attaching the ICS document if present.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	if msg.ICS != "" {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString([]byte(msg.ICS)))
		attachment.SetType("text/calendar")
		attachment.SetFilename("appointment.ics")
		attachment.SetDisposition("attachment")
		m.AddAttachment(attachment)
	}

	response, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
