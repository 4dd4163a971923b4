package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoアプリを組み立てる。CORSは全オリジン許可。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	categoryH *handler.CategoryHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	reviewH *handler.ReviewHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	RegisterRoutes(e, cfg, authH, productH, categoryH, cartH, orderH, reviewH)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
