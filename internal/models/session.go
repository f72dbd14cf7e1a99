package models

import "time"

type Session struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	MaxParticipants int       `gorm:"not null" json:"maxParticipants"`
	Type            string    `json:"type"`
	ManagementCode  string    `gorm:"uniqueIndex;not null" json:"-"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Email           string    `json:"email,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
