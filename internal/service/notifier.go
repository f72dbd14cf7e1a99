package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/mailer"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/metric"
)

// Notifier sends the post-write notification mails. Sends are awaited with a
// bounded timeout so a slow SMTP server cannot stall a request, and the
// outcome only ever reaches the caller as a softer message, never as a failed
// request.
type Notifier struct {
	sender  mailer.Sender
	baseURL string
	timeout time.Duration
}

func NewNotifier(sender mailer.Sender, baseURL string, timeout time.Duration) *Notifier {
	return &Notifier{sender: sender, baseURL: baseURL, timeout: timeout}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.sender != nil
}

func (n *Notifier) send(ctx context.Context, msg mailer.Message) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg); err != nil {
		metric.MailFailed.Inc()
		return err
	}
	metric.MailSent.Inc()
	return nil
}

// SessionCreated mails the creator a link carrying the management code.
func (n *Notifier) SessionCreated(ctx context.Context, session *models.Session) error {
	manageURL := fmt.Sprintf("%s/manage/%s", n.baseURL, session.ManagementCode)
	return n.send(ctx, mailer.Message{
		To:      session.Email,
		Subject: fmt.Sprintf("Your session %q has been created", session.Title),
		TextBody: fmt.Sprintf(
			"Your session %q on %s at %s is live.\n\nManage it here: %s\n\nKeep this link secret: anyone with it can edit or delete the session.",
			session.Title, session.Date, session.Time, manageURL,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Your session <strong>%s</strong> on %s at %s is live.</p><p><a href=%q>Manage your session</a></p><p>Keep this link secret: anyone with it can edit or delete the session.</p>",
			session.Title, session.Date, session.Time, manageURL,
		),
	})
}

// AttendeeJoined mails the attendee a link carrying their attendance code.
func (n *Notifier) AttendeeJoined(ctx context.Context, session *models.Session, attendee *models.Attendee) error {
	attendURL := fmt.Sprintf("%s/attendance/%s", n.baseURL, attendee.AttendanceCode)
	return n.send(ctx, mailer.Message{
		To:      attendee.Email,
		Subject: fmt.Sprintf("You joined %q", session.Title),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nyou are registered for %q on %s at %s.\n\nView or cancel your registration here: %s",
			attendee.Name, session.Title, session.Date, session.Time, attendURL,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>you are registered for <strong>%s</strong> on %s at %s.</p><p><a href=%q>View or cancel your registration</a></p>",
			attendee.Name, session.Title, session.Date, session.Time, attendURL,
		),
	})
}
