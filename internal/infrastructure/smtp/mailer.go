package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/go-account-verify/internal/config"
)

// Mailer delivers verification emails. It has no retry logic: a failed
// send is reported once to the caller and not re-attempted.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) error
	// Ping checks that the SMTP server is reachable. Best-effort: callers
	// log a warning on failure rather than aborting startup.
	Ping() error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody,
	)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

func (m *mailer) Ping() error {
	c, err := smtp.Dial(fmt.Sprintf("%s:%s", m.host, m.port))
	if err != nil {
		return err
	}
	return c.Quit()
}
