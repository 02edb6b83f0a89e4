package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/hotacreatives/intake-backend/internal/model"
)

// Mailer sends one HTML notification. Fire-and-forget: callers log
// failures and move on, nothing is retried.
type Mailer interface {
	Send(msg model.EmailMessage) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(msg model.EmailMessage) error {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		m.From, msg.To, msg.Subject,
	)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, auth, m.From, []string{msg.To}, []byte(headers+msg.HTMLBody))
}

// LogMailer is the development sender: it logs instead of delivering.
type LogMailer struct{}

func (m *LogMailer) Send(msg model.EmailMessage) error {
	log.Printf("📧 [dev] would send %q to %s (%d bytes)\n", msg.Subject, msg.To, len(msg.HTMLBody))
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
var _ Mailer = (*LogMailer)(nil)
