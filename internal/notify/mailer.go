package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations are expected to be safe
// for use from the dispatcher goroutine.
type Sender interface {
	Send(e Email) error
}

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) Send(e Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/html", e.HTML)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
