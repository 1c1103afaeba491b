package http

import (
	"log/slog"
	"net/http"

	"eats/internal/adapters/in/http/middleware"
	"eats/internal/core/application/auth"
	"eats/internal/logging"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Server        *Server
	Authenticator middleware.Authenticator
	Policy        auth.Policy
	Logger        *slog.Logger

	// Registry receives HTTP metrics and backs /metrics. Nil disables both.
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance with the full middleware chain and
// every route bound to its policy operation.
func NewRouter(d RouterDeps) *echo.Echo {
	if d.Logger == nil {
		d.Logger = logging.New("http")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	if d.Registry != nil {
		e.Use(middleware.Metrics(d.Registry))
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(middleware.Authentication(d.Authenticator))

	e.GET("/health", d.Server.Health)

	guard := func(op string) echo.MiddlewareFunc {
		return middleware.Guard(d.Policy, op)
	}

	v1 := e.Group("/api/v1")
	v1.POST("/accounts", d.Server.CreateAccount, guard(auth.OpCreateAccount))
	v1.POST("/login", d.Server.LogIn, guard(auth.OpLogIn))
	v1.GET("/me", d.Server.Me, guard(auth.OpMe))

	v1.POST("/orders", d.Server.CreateOrder, guard(auth.OpCreateOrder))
	v1.GET("/orders", d.Server.GetOrders, guard(auth.OpGetOrders))
	v1.GET("/orders/:id", d.Server.GetOrder, guard(auth.OpGetOrder))
	v1.PATCH("/orders/:id", d.Server.EditOrder, guard(auth.OpEditOrder))
	v1.POST("/orders/:id/take", d.Server.TakeOrder, guard(auth.OpTakeOrder))

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{"ok": false, "error": "Not found"})
	})

	return e
}
