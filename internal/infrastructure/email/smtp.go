// Package email sends transactional mail over SMTP. Delivery is always
// best-effort: a failed send is logged by the caller, never surfaced to
// the client.
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

// SendWelcomeEmail greets a freshly registered account.
func (s *SMTPEmailService) SendWelcomeEmail(to string) error {
	subject := "Welcome to Casefile"
	htmlBody := `
		<html>
		<body>
			<h2>Welcome to Casefile!</h2>
			<p>Your account has been created. You can now sign in and file your first case.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`

	plainBody := `
Welcome to Casefile!

Your account has been created. You can now sign in and file your first case.

If you didn't create an account, please ignore this email.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopEmailService is used when outbound email is disabled by configuration.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService {
	return &NoopEmailService{}
}

func (s *NoopEmailService) SendWelcomeEmail(string) error {
	return nil
}
