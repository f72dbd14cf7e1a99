package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Coercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"number", `{"maxParticipants":12}`, 12},
		{"numeric string", `{"maxParticipants":"12"}`, 12},
		{"non-numeric string", `{"maxParticipants":"a dozen"}`, 0},
		{"null", `{"maxParticipants":null}`, 0},
		{"missing", `{}`, 0},
		{"negative", `{"maxParticipants":-3}`, 0},
		{"negative string", `{"maxParticipants":"-3"}`, 0},
		{"fractional", `{"maxParticipants":3.9}`, 0},
		{"huge number", `{"maxParticipants":1e30}`, 0},
		{"huge string", `{"maxParticipants":"99999999999"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateSessionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.MaxParticipants.Int())
		})
	}
}

func TestFlexInt_MalformedValueDoesNotFailDecoding(t *testing.T) {
	var req CreateSessionRequest
	err := json.Unmarshal([]byte(`{"title":"Chess Night","maxParticipants":{"nested":true}}`), &req)

	require.NoError(t, err)
	assert.Equal(t, "Chess Night", req.Title)
	assert.Equal(t, 0, req.MaxParticipants.Int())
}
