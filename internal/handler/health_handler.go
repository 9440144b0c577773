package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	environment string
	startedAt   time.Time
}

func NewHealthHandler(db *gorm.DB, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment, startedAt: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/health/detailed", h.DetailedHealth)
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.startedAt).String(),
		"environment": h.environment,
	})
}

func (h *HealthHandler) DetailedHealth(c echo.Context) error {
	overall, dbStatus := "ok", "up"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		overall, dbStatus = "degraded", "down"
		code = http.StatusInternalServerError
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(code, map[string]any{
		"status": overall,
		"db":     dbStatus,
		"system": map[string]any{
			"goVersion":  runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"allocBytes": mem.Alloc,
		},
		"environment": h.environment,
	})
}
