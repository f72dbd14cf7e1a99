package dto

import (
	"time"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
)

// SessionResponse deliberately omits the management code: it is a capability
// token, and the creator already holds it.
type SessionResponse struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	MaxParticipants     int       `json:"maxParticipants"`
	Type                string    `json:"type"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	CreatedAt           time.Time `json:"createdAt"`
	CurrentParticipants int64     `json:"currentParticipants"`
}

type CreateSessionResponse struct {
	SessionResponse
	Message string `json:"message,omitempty"`
}

type AttendeeResponse struct {
	ID           uint      `json:"id"`
	SessionID    uint      `json:"sessionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// AttendeeSelfResponse is what an attendee sees when resolving their own
// attendance code.
type AttendeeSelfResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	SessionID uint   `json:"sessionId"`
}

type JoinSessionResponse struct {
	Message             string `json:"message"`
	AttendanceCode      string `json:"attendanceCode"`
	CurrentParticipants int64  `json:"currentParticipants"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *models.Session, currentParticipants int64) SessionResponse {
	return SessionResponse{
		ID:                  s.ID,
		Title:               s.Title,
		Description:         s.Description,
		Date:                s.Date,
		Time:                s.Time,
		MaxParticipants:     s.MaxParticipants,
		Type:                s.Type,
		Latitude:            s.Latitude,
		Longitude:           s.Longitude,
		CreatedAt:           s.CreatedAt,
		CurrentParticipants: currentParticipants,
	}
}

func ToAttendeeResponse(a *models.Attendee) AttendeeResponse {
	return AttendeeResponse{
		ID:           a.ID,
		SessionID:    a.SessionID,
		Name:         a.Name,
		Email:        a.Email,
		RegisteredAt: a.RegisteredAt,
	}
}
