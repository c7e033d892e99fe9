package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	BaseURL  string
}

func NewEmailSender(host string, port int, user, password, from, baseURL string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		BaseURL:  baseURL,
	}
}

func (s *EmailSender) SendVerification(to, name, token string) error {
	link := fmt.Sprintf("%s/api/v1/owner/verify/%s", s.BaseURL, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nConfirm your email address by opening the link below:\n\n%s\n\nThe link is valid for 24 hours.\n",
		name, link,
	)
	return s.send(to, "Verify your Everest account", body)
}

func (s *EmailSender) SendPasswordReset(to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.BaseURL, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. Open the link below to pick a new password:\n\n%s\n\nThe link is valid for 1 hour. If you did not request this, ignore this mail.\n",
		name, link,
	)
	return s.send(to, "Reset your Everest password", body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail over SMTP: %w", err)
	}
	return nil
}
