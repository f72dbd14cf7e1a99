package repository

import (
	"context"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindAll(ctx context.Context) ([]models.Session, error)
	FindByID(ctx context.Context, id uint) (*models.Session, error)
	FindByManagementCode(ctx context.Context, code string) (*models.Session, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindAll returns sessions newest-first for display.
func (r *sessionRepository) FindAll(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByManagementCode(ctx context.Context, code string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).Where("management_code = ?", code).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByIDForUpdate acquires a row-level lock on the session within the given
// transaction, serializing concurrent joins against the capacity ceiling.
func (r *sessionRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Session, error) {
	var session models.Session
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// Delete reports the number of rows removed so callers can tell a row that
// vanished under a concurrent delete apart from a successful one.
func (r *sessionRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Session{}, id)
	return result.RowsAffected, result.Error
}
