package server

import (
	"log/slog"
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/handler"
	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	"github.com/Kodelavinaykumar/QuickKart1/internal/middleware"
	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Routes struct {
	Auth         *handler.AuthHandler
	AdminAuth    *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	AdminProduct *handler.AdminProductHandler
	AdminOrder   *handler.AdminOrderHandler
	AdminUser    *handler.AdminUserHandler
	Stores       *store.Stores
	Gatherer     prometheus.Gatherer
}

// NewEcho は共通ミドルウェア付きのechoを返す
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	return e
}

func RegisterRoutes(e *echo.Echo, r Routes) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.Gatherer)))

	r.Auth.RegisterRoutes(e)
	r.Product.RegisterRoutes(e)
	r.Cart.RegisterRoutes(e)
	r.Order.RegisterRoutes(e, r.Stores.Session)

	// /admin/login, /admin/logout, /admin/session は管理者セッション無しで使う
	r.AdminAuth.RegisterRoutes(e)

	// それ以外の /admin 配下は管理者セッション必須
	admin := e.Group("/admin", middleware.RequireAdmin(r.Stores.Admin))
	r.AdminProduct.RegisterRoutes(admin)
	r.AdminOrder.RegisterRoutes(admin)
	r.AdminUser.RegisterRoutes(admin)
}
