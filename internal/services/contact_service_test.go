package services

import (
	"context"
	"errors"
	"testing"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []*email.Message
	err  error
}

func (m *fakeMailer) Send(msg *email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestContactSendRelaysToOwner(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, ContactConfig{
		FromEmail:    "noreply@example.com",
		ContactEmail: "owner@example.com",
	})

	err := svc.Send(context.Background(), &dto.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "I would like to hire you.",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Jane Visitor")
	assert.Contains(t, msg.Body, "I would like to hire you.")
}

func TestContactSendWrapsMailerFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	svc := NewContactService(mailer, ContactConfig{
		FromEmail:    "noreply@example.com",
		ContactEmail: "owner@example.com",
	})

	err := svc.Send(context.Background(), &dto.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "hello",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
	assert.Equal(t, 502, appErr.HTTPCode)
}
