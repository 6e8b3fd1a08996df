package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"policyhub/internal/service"
)

// StatsHandler serves the registry usage aggregates.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview godoc
// @Summary Registry usage statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Router /stats [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	stats, err := h.statsService.Overview(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats":   stats,
	})
}
