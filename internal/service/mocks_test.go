package service

import (
	"context"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/mailer"
	"gorm.io/gorm"
)

// --- Mock SessionRepository ---

type mockSessionRepo struct {
	createFn             func(ctx context.Context, session *models.Session) error
	findAllFn            func(ctx context.Context) ([]models.Session, error)
	findByIDFn           func(ctx context.Context, id uint) (*models.Session, error)
	findByCodeFn         func(ctx context.Context, code string) (*models.Session, error)
	findByIDForUpdateFn  func(ctx context.Context, tx *gorm.DB, id uint) (*models.Session, error)
	saveFn               func(ctx context.Context, session *models.Session) error
	deleteFn             func(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.Session) error {
	return m.createFn(ctx, session)
}
func (m *mockSessionRepo) FindAll(ctx context.Context) ([]models.Session, error) {
	return m.findAllFn(ctx)
}
func (m *mockSessionRepo) FindByID(ctx context.Context, id uint) (*models.Session, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockSessionRepo) FindByManagementCode(ctx context.Context, code string) (*models.Session, error) {
	return m.findByCodeFn(ctx, code)
}
func (m *mockSessionRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Session, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockSessionRepo) Save(ctx context.Context, session *models.Session) error {
	return m.saveFn(ctx, session)
}
func (m *mockSessionRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockSessionRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock AttendeeRepository ---

type mockAttendeeRepo struct {
	createFn          func(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error
	findBySessionFn   func(ctx context.Context, sessionID uint) ([]models.Attendee, error)
	findByCodeFn      func(ctx context.Context, code string) (*models.Attendee, error)
	countBySessionFn  func(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error)
	saveFn            func(ctx context.Context, attendee *models.Attendee) error
	deleteByCodeFn    func(ctx context.Context, code string) (int64, error)
	deleteBySessionFn func(ctx context.Context, tx *gorm.DB, sessionID uint) error
}

func (m *mockAttendeeRepo) Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error {
	return m.createFn(ctx, tx, attendee)
}
func (m *mockAttendeeRepo) FindBySession(ctx context.Context, sessionID uint) ([]models.Attendee, error) {
	return m.findBySessionFn(ctx, sessionID)
}
func (m *mockAttendeeRepo) FindByCode(ctx context.Context, code string) (*models.Attendee, error) {
	return m.findByCodeFn(ctx, code)
}
func (m *mockAttendeeRepo) CountBySession(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error) {
	return m.countBySessionFn(ctx, tx, sessionID)
}
func (m *mockAttendeeRepo) Save(ctx context.Context, attendee *models.Attendee) error {
	return m.saveFn(ctx, attendee)
}
func (m *mockAttendeeRepo) DeleteByCode(ctx context.Context, code string) (int64, error) {
	return m.deleteByCodeFn(ctx, code)
}
func (m *mockAttendeeRepo) DeleteBySession(ctx context.Context, tx *gorm.DB, sessionID uint) error {
	return m.deleteBySessionFn(ctx, tx, sessionID)
}
func (m *mockAttendeeRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock mail sender ---

type mockSender struct {
	sendFn func(ctx context.Context, msg mailer.Message) error
	sent   []mailer.Message
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	if m.sendFn != nil {
		if err := m.sendFn(ctx, msg); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}
