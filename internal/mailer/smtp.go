package mailer

import (
	"errors"
	"fmt"
	"html/template"

	gomail "gopkg.in/mail.v2"
)

// The relay host and sender identity are fixed; only the password comes
// from configuration.
const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 587
)

type SMTPClient struct {
	fromEmail string
	dialer    *gomail.Dialer
}

func NewSMTPClient(fromEmail, password string) (*SMTPClient, error) {
	if fromEmail == "" || password == "" {
		return nil, errors.New("sender email and password are required")
	}

	dialer := gomail.NewDialer(smtpHost, smtpPort, fromEmail, password)
	dialer.StartTLSPolicy = gomail.MandatoryStartTLS

	return &SMTPClient{
		fromEmail: fromEmail,
		dialer:    dialer,
	}, nil
}

// Send renders the named template and delivers it in one blocking SMTP
// round trip. There is no retry here; a failed send surfaces to the caller.
func (c *SMTPClient) Send(templateFile, email string, data any) error {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	subject, body, err := renderEmail(tmpl, data)
	if err != nil {
		return fmt.Errorf("render template %s: %w", templateFile, err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.fromEmail, FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return c.dialer.DialAndSend(msg)
}
