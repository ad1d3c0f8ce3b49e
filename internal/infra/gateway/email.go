package gateway

import (
	"context"
	"fmt"
	"net/smtp"

	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/errs"
)

// SMTPSender delivers plain-text email via unauthenticated SMTP. It
// implements usecase.EmailGateway.
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(cfg config.ContactConfig) *SMTPSender {
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.FromEmail,
	}
}

func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for most relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
