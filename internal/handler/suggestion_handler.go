package handler

import (
	"net/http"

	"github.com/Minoovn/backendForHobbyPlanner/internal/dto"
	"github.com/Minoovn/backendForHobbyPlanner/internal/service"
	"github.com/labstack/echo/v4"
)

type SuggestionHandler struct {
	svc service.SuggestionService
}

func NewSuggestionHandler(svc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

func (h *SuggestionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/suggest-session", h.SuggestSession)
}

func (h *SuggestionHandler) SuggestSession(c echo.Context) error {
	var req dto.SuggestSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	suggestion, err := h.svc.Suggest(c.Request().Context(), req.Prompt)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate suggestion")
	}

	return c.JSON(http.StatusOK, dto.SuggestionResponse{Suggestion: suggestion})
}
