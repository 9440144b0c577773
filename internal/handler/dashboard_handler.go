package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/service"
)

type DashboardHandler struct {
	svc service.StatsService
}

func NewDashboardHandler(svc service.StatsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
