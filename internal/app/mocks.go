package app

import (
	"projectconnect/internal/email"
	"projectconnect/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when email is disabled.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[mock email]", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) Close() error {
	return nil
}
