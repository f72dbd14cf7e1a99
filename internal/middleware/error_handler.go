package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler shapes every error into the uniform {"error": string} body.
// Unexpected errors are logged with context server-side and reach the client
// as a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	_ = c.JSON(code, map[string]string{"error": msg})
}
