package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type healthBody struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	UptimeSec int    `json:"uptime_sec"`
	Time      string `json:"time"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	body := healthBody{
		Status:    "ok",
		Database:  "ok",
		UptimeSec: int(time.Since(appStart).Seconds()),
		Time:      time.Now().Format(time.RFC3339),
	}
	if err := h.pingDB(ctx); err != nil {
		body.Status = "degraded"
		body.Database = err.Error()
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	return c.JSON(http.StatusOK, body)
}

func (h *HealthCtrl) pingDB(ctx context.Context) error {
	if h.db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
