package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const Version = "1.0.0"

type HealthCtrl struct {
	db          *gorm.DB
	environment string
}

func New(db *gorm.DB, environment string) *HealthCtrl {
	return &HealthCtrl{db: db, environment: environment}
}

// Root is the unversioned liveness endpoint.
func (h *HealthCtrl) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"message": "Mkulima AI API is running",
		"version": Version,
	})
}

// Health pings the database with a short deadline so a wedged sqlite
// file doesn't hang the probe.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	if sqlDB, err := h.db.DB(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, echo.Map{
		"status":      status,
		"environment": h.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
