package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/internal/repository"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/metric"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/rabbitmq"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/token"
	"gorm.io/gorm"
)

// JoinResult is what a successful registration hands back to the caller.
type JoinResult struct {
	Attendee            *models.Attendee
	CurrentParticipants int64
	Message             string
}

type AttendeeService interface {
	Join(ctx context.Context, sessionID uint, firstName, lastName, email string) (*JoinResult, error)
	ListForSession(ctx context.Context, sessionID uint) ([]models.Attendee, error)
	ListForManagementCode(ctx context.Context, code string) ([]models.Attendee, error)
	GetByCode(ctx context.Context, code string) (*models.Attendee, error)
	UpdateByCode(ctx context.Context, code, name, email string) error
	DeleteByCode(ctx context.Context, code string) error
}

type attendeeService struct {
	attendeeRepo repository.AttendeeRepository
	sessionRepo  repository.SessionRepository
	publisher    *rabbitmq.Publisher
	notifier     *Notifier
	requireEmail bool
}

func NewAttendeeService(
	attendeeRepo repository.AttendeeRepository,
	sessionRepo repository.SessionRepository,
	publisher *rabbitmq.Publisher,
	notifier *Notifier,
	requireEmail bool,
) AttendeeService {
	return &attendeeService{
		attendeeRepo: attendeeRepo,
		sessionRepo:  sessionRepo,
		publisher:    publisher,
		notifier:     notifier,
		requireEmail: requireEmail,
	}
}

// Join registers an attendee inside a transaction holding a row lock on the
// session, so concurrent joins serialize and can never overshoot the capacity
// ceiling.
func (s *attendeeService) Join(ctx context.Context, sessionID uint, firstName, lastName, email string) (*JoinResult, error) {
	if s.requireEmail && strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	code, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("join session %d: %w", sessionID, err)
	}

	var session *models.Session
	attendee := &models.Attendee{
		SessionID:      sessionID,
		Name:           strings.TrimSpace(firstName + " " + lastName),
		Email:          email,
		AttendanceCode: code,
		RegisteredAt:   time.Now(),
	}
	var count int64

	err = s.attendeeRepo.Transaction(ctx, func(tx *gorm.DB) error {
		session, err = s.sessionRepo.FindByIDForUpdate(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		count, err = s.attendeeRepo.CountBySession(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if count >= int64(session.MaxParticipants) {
			return ErrSessionFull
		}

		return s.attendeeRepo.Create(ctx, tx, attendee)
	})
	if err != nil {
		if errors.Is(err, ErrSessionFull) {
			metric.JoinsRejectedFull.Inc()
		}
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionFull) {
			return nil, err
		}
		return nil, fmt.Errorf("join session %d: %w", sessionID, err)
	}
	metric.AttendeesJoined.Inc()

	if err := s.publisher.Publish("attendee.joined", attendee); err != nil {
		slog.Warn("failed to publish attendee.joined", "attendee_id", attendee.ID, "error", err)
	}

	result := &JoinResult{
		Attendee:            attendee,
		CurrentParticipants: count + 1,
		Message:             "registration successful",
	}
	if attendee.Email == "" || !s.notifier.Enabled() {
		return result, nil
	}
	if err := s.notifier.AttendeeJoined(ctx, session, attendee); err != nil {
		slog.Warn("failed to send registration mail", "attendee_id", attendee.ID, "error", err)
		result.Message = "registration successful, but the confirmation email could not be sent"
		return result, nil
	}
	result.Message = "registration successful, confirmation email sent"
	return result, nil
}

func (s *attendeeService) ListForSession(ctx context.Context, sessionID uint) ([]models.Attendee, error) {
	attendees, err := s.attendeeRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list attendees for session %d: %w", sessionID, err)
	}
	return attendees, nil
}

// ListForManagementCode resolves the session first, so an unknown code is a
// not-found rather than an empty list.
func (s *attendeeService) ListForManagementCode(ctx context.Context, code string) ([]models.Attendee, error) {
	session, err := s.sessionRepo.FindByManagementCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("list attendees by management code: %w", err)
	}
	return s.ListForSession(ctx, session.ID)
}

func (s *attendeeService) GetByCode(ctx context.Context, code string) (*models.Attendee, error) {
	attendee, err := s.attendeeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("get attendee by code: %w", err)
	}
	return attendee, nil
}

func (s *attendeeService) UpdateByCode(ctx context.Context, code, name, email string) error {
	attendee, err := s.attendeeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendeeNotFound
		}
		return fmt.Errorf("update attendee by code: %w", err)
	}

	attendee.Name = name
	attendee.Email = email
	if err := s.attendeeRepo.Save(ctx, attendee); err != nil {
		return fmt.Errorf("update attendee %d: %w", attendee.ID, err)
	}
	return nil
}

func (s *attendeeService) DeleteByCode(ctx context.Context, code string) error {
	rows, err := s.attendeeRepo.DeleteByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("delete attendee by code: %w", err)
	}
	if rows == 0 {
		return ErrAttendeeNotFound
	}

	if err := s.publisher.Publish("attendee.left", map[string]string{"attendanceCode": code}); err != nil {
		slog.Warn("failed to publish attendee.left", "error", err)
	}
	return nil
}
