// Package email sends notification emails over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService implements the notification layer's EmailSender.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// Send delivers a single HTML email. The body is already rendered and
// sanitized by the caller.
func (s *SMTPEmailService) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
