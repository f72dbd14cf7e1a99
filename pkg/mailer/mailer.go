// Package mailer wraps the outbound SMTP transport behind a small interface
// so services can be tested without a mail server.
package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string // optional alternative part
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers the message, honoring ctx cancellation. gomail has no native
// context support, so the dial-and-send runs in a goroutine and the first of
// ctx or completion wins; an abandoned send finishes (or fails) in the
// background without anyone waiting on it.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("mailer: send to %s: %w", msg.To, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
		}
		return nil
	}
}
