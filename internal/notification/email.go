package notification

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers confirmations straight to the relay.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, c domain.Confirmation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.sendMail(addr, auth, s.cfg.From, []string{c.To}, ComposeConfirmation(s.cfg.From, c)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// ComposeConfirmation renders the thank-you message with headers.
func ComposeConfirmation(from string, c domain.Confirmation) []byte {
	subject := fmt.Sprintf("¡Gracias por registrarte en %s!", c.BootcampName)

	var body strings.Builder
	fmt.Fprintf(&body, "Hola %s,\r\n\r\n", c.ToName)
	fmt.Fprintf(&body, "Gracias por registrarte en %s.\r\n\r\n", c.BootcampName)
	fmt.Fprintf(&body, "Horario: %s\r\n", c.Schedule)
	fmt.Fprintf(&body, "Fecha de inicio: %s\r\n\r\n", c.StartDate)
	body.WriteString("Nos pondremos en contacto contigo con los siguientes pasos.\r\n")

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", c.To)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", c.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	return []byte(msg.String())
}
