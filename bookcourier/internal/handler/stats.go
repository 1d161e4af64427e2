package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetStats godoc
// @Summary Lifecycle event counts
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsInfo
// @Failure 401,403 {object} echo.HTTPError
// @Router /stats [get]
func (h *Handler) GetStats(c echo.Context) error {
	stat, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stat)
}
