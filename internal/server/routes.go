package server

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	categoryH *handler.CategoryHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	reviewH *handler.ReviewHandler,
) {
	authH.RegisterRoutes(e, cfg)
	productH.RegisterRoutes(e, cfg)
	categoryH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	reviewH.RegisterRoutes(e, cfg)

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: time.Now()})
	})
}
