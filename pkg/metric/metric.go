// Package metric exposes the service's prometheus counters.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_sessions_created_total",
		Help: "Number of sessions created",
	})
	SessionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_sessions_deleted_total",
		Help: "Number of sessions deleted via management code",
	})
	AttendeesJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_attendees_joined_total",
		Help: "Number of successful attendee registrations",
	})
	JoinsRejectedFull = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_joins_rejected_full_total",
		Help: "Number of join attempts rejected because the session was full",
	})
	MailSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_mail_sent_total",
		Help: "Number of notification mails delivered",
	})
	MailFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_mail_failed_total",
		Help: "Number of notification mails that failed to send",
	})
	SuggestionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyplanner_suggestions_served_total",
		Help: "Number of session description suggestions served",
	})
)
