package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FlexInt is a non-negative integer that tolerates sloppy client encodings:
// JSON numbers, numeric strings and null all decode, anything else (negative,
// fractional or beyond 32 bits) collapses to 0. One historical client
// serialized maxParticipants as a string, so the coercion stays at the edge
// and the column stays a native integer.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > math.MaxInt32 {
			*f = 0
			return nil
		}
		*f = FlexInt(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil || n < 0 || n > math.MaxInt32 || n != math.Trunc(n) {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

func (f FlexInt) Int() int { return int(f) }

type CreateSessionRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	MaxParticipants FlexInt  `json:"maxParticipants"`
	Type            string   `json:"type"`
	ManagementCode  string   `json:"managementCode"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Email           string   `json:"email"`
}

type UpdateSessionRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	MaxParticipants FlexInt  `json:"maxParticipants"`
	Type            string   `json:"type"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

type JoinSessionRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UpdateAttendeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SuggestSessionRequest struct {
	Prompt string `json:"prompt"`
}
