package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/internal/repository"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/metric"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/rabbitmq"
	"gorm.io/gorm"
)

// SessionSummary pairs a session with its live attendee count.
type SessionSummary struct {
	Session             models.Session
	CurrentParticipants int64
}

type SessionService interface {
	ListSessions(ctx context.Context) ([]SessionSummary, error)
	GetSession(ctx context.Context, id uint) (*models.Session, int64, error)
	GetSessionByManagementCode(ctx context.Context, code string) (*models.Session, int64, error)
	CreateSession(ctx context.Context, session *models.Session) (string, error)
	UpdateSession(ctx context.Context, code string, fields *models.Session) (*models.Session, int64, error)
	DeleteSession(ctx context.Context, code string) error
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	attendeeRepo repository.AttendeeRepository
	publisher    *rabbitmq.Publisher
	notifier     *Notifier
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	attendeeRepo repository.AttendeeRepository,
	publisher *rabbitmq.Publisher,
	notifier *Notifier,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		attendeeRepo: attendeeRepo,
		publisher:    publisher,
		notifier:     notifier,
	}
}

func (s *sessionService) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	sessions, err := s.sessionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	summaries := make([]SessionSummary, len(sessions))
	for i, session := range sessions {
		count, err := s.attendeeRepo.CountBySession(ctx, nil, session.ID)
		if err != nil {
			return nil, fmt.Errorf("count attendees for session %d: %w", session.ID, err)
		}
		summaries[i] = SessionSummary{Session: session, CurrentParticipants: count}
	}
	return summaries, nil
}

func (s *sessionService) GetSession(ctx context.Context, id uint) (*models.Session, int64, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrSessionNotFound
		}
		return nil, 0, fmt.Errorf("get session %d: %w", id, err)
	}

	count, err := s.attendeeRepo.CountBySession(ctx, nil, session.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("count attendees for session %d: %w", session.ID, err)
	}
	return session, count, nil
}

func (s *sessionService) GetSessionByManagementCode(ctx context.Context, code string) (*models.Session, int64, error) {
	session, err := s.sessionRepo.FindByManagementCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrSessionNotFound
		}
		return nil, 0, fmt.Errorf("get session by management code: %w", err)
	}

	count, err := s.attendeeRepo.CountBySession(ctx, nil, session.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("count attendees for session %d: %w", session.ID, err)
	}
	return session, count, nil
}

// CreateSession persists the session and mails the creator a management link
// when an address was supplied. The returned message carries the notification
// outcome; a failed mail never fails the creation.
func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	metric.SessionsCreated.Inc()

	if err := s.publisher.Publish("session.created", session); err != nil {
		slog.Warn("failed to publish session.created", "session_id", session.ID, "error", err)
	}

	if session.Email == "" || !s.notifier.Enabled() {
		return "session created", nil
	}
	if err := s.notifier.SessionCreated(ctx, session); err != nil {
		slog.Warn("failed to send session creation mail", "session_id", session.ID, "error", err)
		return "session created, but the confirmation email could not be sent", nil
	}
	return "session created, confirmation email sent", nil
}

// UpdateSession overwrites all mutable fields of the session matching the
// management code.
func (s *sessionService) UpdateSession(ctx context.Context, code string, fields *models.Session) (*models.Session, int64, error) {
	session, err := s.sessionRepo.FindByManagementCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrSessionNotFound
		}
		return nil, 0, fmt.Errorf("update session: %w", err)
	}

	session.Title = fields.Title
	session.Description = fields.Description
	session.Date = fields.Date
	session.Time = fields.Time
	session.MaxParticipants = fields.MaxParticipants
	session.Type = fields.Type
	session.Latitude = fields.Latitude
	session.Longitude = fields.Longitude

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, 0, fmt.Errorf("update session %d: %w", session.ID, err)
	}

	count, err := s.attendeeRepo.CountBySession(ctx, nil, session.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("count attendees for session %d: %w", session.ID, err)
	}
	return session, count, nil
}

// DeleteSession removes the session matching the management code together
// with all of its attendees in one transaction, so no orphaned attendees can
// survive.
func (s *sessionService) DeleteSession(ctx context.Context, code string) error {
	session, err := s.sessionRepo.FindByManagementCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}

	err = s.sessionRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.attendeeRepo.DeleteBySession(ctx, tx, session.ID); err != nil {
			return err
		}
		rows, err := s.sessionRepo.Delete(ctx, tx, session.ID)
		if err != nil {
			return err
		}
		// The row can vanish between the lookup and the transaction when two
		// deletes race on the same code; rolling back keeps the 404 exact.
		if rows == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session %d: %w", session.ID, err)
	}
	metric.SessionsDeleted.Inc()

	if err := s.publisher.Publish("session.deleted", session); err != nil {
		slog.Warn("failed to publish session.deleted", "session_id", session.ID, "error", err)
	}
	return nil
}
