package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReturnCreated(toEmail, consumerName, authorizationCode string) error
	SendStatusUpdate(toEmail, consumerName, authorizationCode, status string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendReturnCreated(toEmail, consumerName, authorizationCode string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Return %s received", authorizationCode))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>We received your return request.</p>
			<p>Your authorization code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 3px;">%s</h1>
			<p>Keep this code handy when dropping off your items.</p>
		</div>
	`, consumerName, authorizationCode)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send return created mail to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendStatusUpdate(toEmail, consumerName, authorizationCode, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Return %s is now %s", authorizationCode, status))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your return <strong>%s</strong> changed status:</p>
			<h1 style="color: #007BFF;">%s</h1>
			<p>No action is needed unless we contact you.</p>
		</div>
	`, consumerName, authorizationCode, status)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send status update mail to %s: %w", toEmail, err)
	}
	return nil
}
