package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Minoovn/backendForHobbyPlanner/internal/dto"
	"github.com/Minoovn/backendForHobbyPlanner/internal/service"
	"github.com/labstack/echo/v4"
)

type AttendeeHandler struct {
	svc service.AttendeeService
}

func NewAttendeeHandler(svc service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{svc: svc}
}

func (h *AttendeeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sessions/:id/attendees", h.ListAttendees)
	e.POST("/sessions/:id/attendees", h.JoinSession)
	e.GET("/sessions/manage/:managementCode/attendees", h.ListAttendeesByManagementCode)

	// Self-service via the attendance code.
	e.GET("/attendees/:code", h.GetAttendee)
	e.PUT("/attendees/:code", h.UpdateAttendee)
	e.DELETE("/attendees/:code", h.DeleteAttendee)
}

func (h *AttendeeHandler) ListAttendees(c echo.Context) error {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	attendees, err := h.svc.ListForSession(c.Request().Context(), uint(sessionID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list attendees")
	}

	resp := make([]dto.AttendeeResponse, len(attendees))
	for i, a := range attendees {
		resp[i] = dto.ToAttendeeResponse(&a)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AttendeeHandler) ListAttendeesByManagementCode(c echo.Context) error {
	attendees, err := h.svc.ListForManagementCode(c.Request().Context(), c.Param("managementCode"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list attendees")
	}

	resp := make([]dto.AttendeeResponse, len(attendees))
	for i, a := range attendees {
		resp[i] = dto.ToAttendeeResponse(&a)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AttendeeHandler) JoinSession(c echo.Context) error {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	var req dto.JoinSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.Join(c.Request().Context(), uint(sessionID), req.FirstName, req.LastName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrSessionFull):
			return echo.NewHTTPError(http.StatusBadRequest, "session is already full")
		case errors.Is(err, service.ErrEmailRequired):
			return echo.NewHTTPError(http.StatusBadRequest, "email is required to join this session")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to join session")
		}
	}

	return c.JSON(http.StatusCreated, dto.JoinSessionResponse{
		Message:             result.Message,
		AttendanceCode:      result.Attendee.AttendanceCode,
		CurrentParticipants: result.CurrentParticipants,
	})
}

func (h *AttendeeHandler) GetAttendee(c echo.Context) error {
	attendee, err := h.svc.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "attendee not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get attendee")
	}

	return c.JSON(http.StatusOK, dto.AttendeeSelfResponse{
		Name:      attendee.Name,
		Email:     attendee.Email,
		SessionID: attendee.SessionID,
	})
}

func (h *AttendeeHandler) UpdateAttendee(c echo.Context) error {
	var req dto.UpdateAttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.UpdateByCode(c.Request().Context(), c.Param("code"), req.Name, req.Email); err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "attendee not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update attendee")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "registration updated"})
}

func (h *AttendeeHandler) DeleteAttendee(c echo.Context) error {
	if err := h.svc.DeleteByCode(c.Request().Context(), c.Param("code")); err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "attendee not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete attendee")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "registration cancelled"})
}
