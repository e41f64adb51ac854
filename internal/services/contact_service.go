package services

import (
	"context"
	"fmt"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/services/dto"
)

type ContactService interface {
	Send(ctx context.Context, req *dto.ContactRequest) error
}

// ContactConfig names the mailbox that receives contact-form messages.
type ContactConfig struct {
	FromEmail    string
	ContactEmail string
}

type contactService struct {
	mailer email.Mailer
	config ContactConfig
}

func NewContactService(mailer email.Mailer, config ContactConfig) ContactService {
	return &contactService{
		mailer: mailer,
		config: config,
	}
}

// Send relays a visitor message to the site owner. The visitor address
// goes into Reply-To so the owner can answer directly.
func (s *contactService) Send(ctx context.Context, req *dto.ContactRequest) error {
	msg := &email.Message{
		From:    s.config.FromEmail,
		ReplyTo: req.Email,
		To:      s.config.ContactEmail,
		Subject: fmt.Sprintf("Portfolio contact from %s", req.Name),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	}

	if err := s.mailer.Send(msg); err != nil {
		return apperrors.NewExternalServiceError(err, "Failed to deliver message")
	}
	return nil
}
