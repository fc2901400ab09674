package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider implements Provider over SMTP via gomail.
type GomailProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewGomailProvider(config *SMTPConfig) *GomailProvider {
	return &GomailProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *GomailProvider) Send(email *Email) error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	m := gomail.NewMessage()
	from := p.config.FromEmail
	if p.config.FromName != "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	return p.dialer.DialAndSend(m)
}

func (p *GomailProvider) Close() error {
	return nil
}
