package repository

import (
	"context"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"gorm.io/gorm"
)

type AttendeeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error
	FindBySession(ctx context.Context, sessionID uint) ([]models.Attendee, error)
	FindByCode(ctx context.Context, code string) (*models.Attendee, error)
	CountBySession(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error)
	Save(ctx context.Context, attendee *models.Attendee) error
	DeleteByCode(ctx context.Context, code string) (int64, error)
	DeleteBySession(ctx context.Context, tx *gorm.DB, sessionID uint) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type attendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

func (r *attendeeRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *attendeeRepository) Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error {
	return tx.WithContext(ctx).Create(attendee).Error
}

func (r *attendeeRepository) FindBySession(ctx context.Context, sessionID uint) ([]models.Attendee, error) {
	var attendees []models.Attendee
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) FindByCode(ctx context.Context, code string) (*models.Attendee, error) {
	var attendee models.Attendee
	if err := r.db.WithContext(ctx).Where("attendance_code = ?", code).First(&attendee).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

// CountBySession runs against the given tx so it can share the row lock taken
// by FindByIDForUpdate during a join. A nil tx counts outside any
// transaction.
func (r *attendeeRepository) CountBySession(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Attendee{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (r *attendeeRepository) Save(ctx context.Context, attendee *models.Attendee) error {
	return r.db.WithContext(ctx).Save(attendee).Error
}

// DeleteByCode reports the number of rows removed so callers can tell an
// unknown code apart from a successful leave.
func (r *attendeeRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Where("attendance_code = ?", code).Delete(&models.Attendee{})
	return result.RowsAffected, result.Error
}

func (r *attendeeRepository) DeleteBySession(ctx context.Context, tx *gorm.DB, sessionID uint) error {
	return tx.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.Attendee{}).Error
}
