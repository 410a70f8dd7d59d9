package email

import (
	"context"
	"fmt"
	"net/smtp"

	"idealink-backend/pkg/logger"
)

// ApplicationReceivedData notifies an idea author about a new application.
type ApplicationReceivedData struct {
	AuthorEmail    string
	IdeaTitle      string
	ApplicantName  string
	ApplicantEmail string
}

// ApplicationDecidedData notifies an applicant about an accept/reject.
type ApplicationDecidedData struct {
	ApplicantEmail string
	IdeaTitle      string
	Status         string
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, data ApplicationReceivedData) error
	SendApplicationDecided(ctx context.Context, data ApplicationDecidedData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewDevEmailService talks to a plain SMTP endpoint (mailhog/mailpit in
// development).
func NewDevEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendApplicationReceived(ctx context.Context, data ApplicationReceivedData) error {
	subject := fmt.Sprintf("New application for \"%s\"", data.IdeaTitle)
	body := fmt.Sprintf(`Hi,

%s (%s) just applied to join your idea "%s".

Log in to your dashboard to review the application.`,
		data.ApplicantName, data.ApplicantEmail, data.IdeaTitle)

	return s.send(data.AuthorEmail, subject, body)
}

func (s *smtpEmailService) SendApplicationDecided(ctx context.Context, data ApplicationDecidedData) error {
	subject := fmt.Sprintf("Your application for \"%s\" was %s", data.IdeaTitle, data.Status)
	body := fmt.Sprintf(`Hi,

The author of "%s" has %s your application.

You can see the details in your dashboard.`,
		data.IdeaTitle, data.Status)

	return s.send(data.ApplicantEmail, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body,
	))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Error("smtp send failed", err)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	logger.Info("email sent", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
	return nil
}
