package email

import "portfolio_backend/internal/logger"

// LogMailer logs messages instead of sending them. Used when no SMTP
// relay is configured, typically in development.
type LogMailer struct{}

func (LogMailer) Send(msg *Message) error {
	logger.Info("mail not sent (no SMTP configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
