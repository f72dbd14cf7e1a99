package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Minoovn/backendForHobbyPlanner/internal/dto"
	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/internal/service"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	svc service.SessionService
}

func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sessions", h.ListSessions)
	e.POST("/sessions", h.CreateSession)
	e.GET("/sessions/:id", h.GetSession)

	// Possession of the management code is the authorization mechanism for
	// every mutating operation.
	e.GET("/sessions/manage/:managementCode", h.GetSessionByManagementCode)
	e.PUT("/sessions/manage/:managementCode", h.UpdateSession)
	e.DELETE("/sessions/manage/:managementCode", h.DeleteSession)
}

func (h *SessionHandler) ListSessions(c echo.Context) error {
	summaries, err := h.svc.ListSessions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list sessions")
	}

	resp := make([]dto.SessionResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = dto.ToSessionResponse(&s.Session, s.CurrentParticipants)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	session, count, err := h.svc.GetSession(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get session")
	}

	return c.JSON(http.StatusOK, dto.ToSessionResponse(session, count))
}

func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.ManagementCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "managementCode is required")
	}

	session := &models.Session{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		MaxParticipants: req.MaxParticipants.Int(),
		Type:            req.Type,
		ManagementCode:  req.ManagementCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Email:           req.Email,
	}

	message, err := h.svc.CreateSession(c.Request().Context(), session)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(http.StatusCreated, dto.CreateSessionResponse{
		SessionResponse: dto.ToSessionResponse(session, 0),
		Message:         message,
	})
}

func (h *SessionHandler) GetSessionByManagementCode(c echo.Context) error {
	session, count, err := h.svc.GetSessionByManagementCode(c.Request().Context(), c.Param("managementCode"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get session")
	}

	return c.JSON(http.StatusOK, dto.ToSessionResponse(session, count))
}

func (h *SessionHandler) UpdateSession(c echo.Context) error {
	var req dto.UpdateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fields := &models.Session{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		MaxParticipants: req.MaxParticipants.Int(),
		Type:            req.Type,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}

	session, count, err := h.svc.UpdateSession(c.Request().Context(), c.Param("managementCode"), fields)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update session")
	}

	return c.JSON(http.StatusOK, dto.ToSessionResponse(session, count))
}

func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if err := h.svc.DeleteSession(c.Request().Context(), c.Param("managementCode")); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete session")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "session and all registrations deleted"})
}
