// Package mail sends account notifications over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Config holds the SMTP endpoint and credentials.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Mailer sends the welcome email on registration. A new SMTP session is
// dialed per message; the volume is one mail per registration.
type Mailer struct {
	cfg       Config
	clientURL string
}

func NewMailer(cfg Config, clientURL string) *Mailer {
	return &Mailer{cfg: cfg, clientURL: clientURL}
}

func (m *Mailer) SendWelcome(ctx context.Context, email, username string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("welcome mail from: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("welcome mail to: %w", err)
	}
	msg.Subject("Welcome to Soul of Sri Lanka!")
	msg.SetBodyString(gomail.TypeTextPlain, welcomeText(username))
	msg.AddAlternativeString(gomail.TypeTextHTML, m.welcomeHTML(username, email))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Pass),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}

func welcomeText(username string) string {
	return fmt.Sprintf("Dear %s,\n\nWelcome to Soul of Sri Lanka! We're thrilled to have you join our community.\n\nStart exploring amazing destinations and experiences in Sri Lanka.\n\nBest regards,\nYour Soul of Sri Lanka Team", username)
}

func (m *Mailer) welcomeHTML(username, email string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #0056b3;">Welcome to Soul of Sri Lanka!</h2>
  <p>Dear %s,</p>
  <p>We're thrilled to have you join our community!</p>
  <p>Your account has been successfully created with the email: <strong>%s</strong></p>
  <p>Start exploring amazing destinations and experiences in Sri Lanka:</p>
  <p style="text-align: center; margin-top: 20px;">
    <a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Explore Now</a>
  </p>
  <p style="margin-top: 30px; font-size: 0.9em; color: #666;">Best regards,<br>The Soul of Sri Lanka Team</p>
</div>`, username, email, m.clientURL)
}

// Noop is used when SMTP is not configured; registration proceeds without a
// welcome notification.
type Noop struct{}

func (Noop) SendWelcome(context.Context, string, string) error { return nil }
