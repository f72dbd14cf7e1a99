package models

import "time"

type Attendee struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SessionID      uint      `gorm:"not null;index" json:"sessionId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AttendanceCode string    `gorm:"uniqueIndex;not null" json:"-"`
	RegisteredAt   time.Time `json:"registeredAt"`

	Session *Session `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}
