package service

import "errors"

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrAttendeeNotFound      = errors.New("attendee not found")
	ErrSessionFull           = errors.New("session is already full")
	ErrEmailRequired         = errors.New("email is required to join this session")
	ErrSuggestionUnavailable = errors.New("suggestion service is unavailable")
)
