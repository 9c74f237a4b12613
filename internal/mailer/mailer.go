// Package mailer sends transactional email over SMTP. The only message
// today is the password reset link.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"voiceforge/pkg/config"
)

// Mailer delivers mail through the configured SMTP relay.
type Mailer struct {
	cfg         config.SMTPConfig
	frontendURL string
}

func New(cfg config.SMTPConfig, frontendURL string) *Mailer {
	return &Mailer{cfg: cfg, frontendURL: frontendURL}
}

// SendPasswordReset mails a reset link that expires in one hour.
func (m *Mailer) SendPasswordReset(email, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(m.frontendURL, "/"), resetToken)

	body := strings.Join([]string{
		"<h1>Password Reset Request</h1>",
		"<p>You requested a password reset. Click the link below to reset your password:</p>",
		fmt.Sprintf(`<a href="%s">Reset Password</a>`, resetURL),
		"<p>If you didn't request this, please ignore this email.</p>",
		"<p>This link will expire in 1 hour.</p>",
	}, "\n")

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + email,
		"Subject: Password Reset Request",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	return nil
}
