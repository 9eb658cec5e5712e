package services

import (
	"fmt"

	"github.com/eluxe/eluxe-backend/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.EmailFrom,
		fromName: cfg.EmailFromName,
	}
}

// SendVerificationCode delivers a one-time code. When the login attempt came
// from an unexpected address or device, the message carries a security alert
// so the account owner notices a hijack attempt even if they did not log in.
func (s *EmailService) SendVerificationCode(to, code string, anomaly bool) error {
	alert := ""
	if anomaly {
		alert = `<p style="color:#b91c1c"><strong>Security alert:</strong> this login came from a new device or location. If this was not you, do not enter the code and consider your inbox compromised.</p>`
	}

	body := fmt.Sprintf(`
		<h2>Your ELUXE verification code</h2>
		<p>Enter the following code to finish signing in:</p>
		<p style="font-size:28px;letter-spacing:6px"><strong>%s</strong></p>
		%s
		<p>If you did not request this code, you can ignore this email.</p>
	`, code, alert)

	return s.send(to, "Your ELUXE verification code", body)
}

// SendOrderConfirmation sends a short confirmation after checkout.
func (s *EmailService) SendOrderConfirmation(to, orderReference string, total float64) error {
	body := fmt.Sprintf(`
		<h2>Thank you for your order</h2>
		<p>Your order <strong>%s</strong> has been placed.</p>
		<p>Total: $%.2f</p>
		<p>Welcome to the ELUXE family.</p>
	`, orderReference, total)

	return s.send(to, "Your ELUXE order "+orderReference, body)
}

func (s *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
