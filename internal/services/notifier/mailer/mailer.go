// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/EleazarRosete/lolos-place-backend/internal/config"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) SendOTP(to, otp string) error {
	return m.send(to, "Your OTP Code",
		fmt.Sprintf("Your OTP code is: %s. It will expire in 5 minutes.", otp))
}

func (m *Mailer) SendOrderConfirmation(to string) error {
	return m.send(to, "Order Confirmation",
		"Thank you for your order! Your order has been confirmed and is being prepared.")
}

func (m *Mailer) SendReservationCancellation(to, customerName, details string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour reservation has been cancelled.\n\n%s\n\nWe hope to see you again soon.",
		customerName, details)
	return m.send(to, "Reservation Cancellation", body)
}
