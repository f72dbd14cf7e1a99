//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Minoovn/backendForHobbyPlanner/internal/handler"
	"github.com/Minoovn/backendForHobbyPlanner/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	sessionSvc, attendeeSvc := newServices()

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	handler.NewSessionHandler(sessionSvc).RegisterRoutes(e)
	handler.NewAttendeeHandler(attendeeSvc).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// Full lifecycle: create, fill to capacity, reject the overflow join, delete
// via management code, observe the 404.
func TestChessNightEndToEnd(t *testing.T) {
	cleanTables()
	e := newTestServer()

	code, created := doJSON(t, e, http.MethodPost, "/sessions",
		`{"title":"Chess Night","maxParticipants":2,"managementCode":"abc123"}`)
	require.Equal(t, http.StatusCreated, code)
	sessionID := int(created["id"].(float64))
	assert.EqualValues(t, 0, created["currentParticipants"])

	path := "/sessions/" + strconv.Itoa(sessionID) + "/attendees"

	code, first := doJSON(t, e, http.MethodPost, path, `{"firstName":"Ada","lastName":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, code)
	firstCode := first["attendanceCode"].(string)
	assert.NotEmpty(t, firstCode)

	code, second := doJSON(t, e, http.MethodPost, path, `{"firstName":"Alan","lastName":"Turing"}`)
	require.Equal(t, http.StatusCreated, code)
	secondCode := second["attendanceCode"].(string)
	assert.NotEqual(t, firstCode, secondCode, "attendance codes are fresh per attendee")
	assert.EqualValues(t, 2, second["currentParticipants"])

	code, full := doJSON(t, e, http.MethodPost, path, `{"firstName":"Grace","lastName":"Hopper"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, full["error"])

	code, _ = doJSON(t, e, http.MethodDelete, "/sessions/manage/abc123", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, e, http.MethodGet, "/sessions/"+strconv.Itoa(sessionID), "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, e, http.MethodGet, "/attendees/"+firstCode, "")
	assert.Equal(t, http.StatusNotFound, code, "cascade removed the attendee")
}

func TestManageRoutesRequireKnownCode(t *testing.T) {
	cleanTables()
	e := newTestServer()

	code, body := doJSON(t, e, http.MethodGet, "/sessions/manage/unknown", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, body["error"])

	code, _ = doJSON(t, e, http.MethodGet, "/sessions/manage/unknown/attendees", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, e, http.MethodPut, "/sessions/manage/unknown", `{"title":"X"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, e, http.MethodDelete, "/sessions/manage/unknown", "")
	assert.Equal(t, http.StatusNotFound, code)
}

