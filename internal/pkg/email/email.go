package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/config"
)

const maxRetries = 3

// Sender delivers plain-text mail to administrators. Callers treat sends as
// best-effort; the notification dispatcher swallows errors after logging.
type Sender interface {
	SendAdminAlert(to []string, subject, body string) error
}

type smtpSender struct {
	cfg config.SMTPConfig
}

// NewSender creates an SMTP-backed Sender.
func NewSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

// SendAdminAlert sends the same message to every recipient.
func (s *smtpSender) SendAdminAlert(to []string, subject, body string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "subject", subject)
		return nil
	}
	if len(to) == 0 {
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "subject", subject, "recipients", len(to), "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
