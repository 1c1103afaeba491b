package http

import (
	"context"
	"net/http"

	"eats/internal/adapters/in/http/middleware"
	"eats/internal/core/application/usecases/accountservice"
	"eats/internal/core/application/usecases/orderservice"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/application/usecases/result"
	"eats/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

// IdempotencyKeyHeader lets clients retry order creation safely.
const IdempotencyKeyHeader = "X-Idempotency-Key"

const msgInvalidBody = "Invalid request body"

// OrderService is satisfied by orderservice.Service.
type OrderService interface {
	CreateOrder(ctx context.Context, customer principal.Principal, in orderservice.CreateOrderInput) result.Output[orderservice.CreateOrderData]
	GetOrders(ctx context.Context, user principal.Principal, status string) result.Output[[]queries.OrderResponse]
	GetOrder(ctx context.Context, user principal.Principal, id string) result.Output[queries.OrderResponse]
	EditOrder(ctx context.Context, user principal.Principal, id, status string) result.Output[queries.OrderResponse]
	TakeOrder(ctx context.Context, driver principal.Principal, id string) result.Output[queries.OrderResponse]
}

// AccountService is satisfied by accountservice.Service.
type AccountService interface {
	CreateAccount(ctx context.Context, in accountservice.CreateAccountInput) result.Output[accountservice.CreateAccountData]
	LogIn(ctx context.Context, in accountservice.LogInInput) result.Output[accountservice.LogInData]
	Me(ctx context.Context, user principal.Principal) result.Output[queries.AccountResponse]
}

// Server translates HTTP requests into service calls. Every result that
// got past the guard is written with 200; only undecodable bodies get 400.
type Server struct {
	orders   OrderService
	accounts AccountService
}

func NewServer(orders OrderService, accounts AccountService) *Server {
	return &Server{orders: orders, accounts: accounts}
}

type editOrderRequest struct {
	Status string `json:"status"`
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(c echo.Context) error {
	var in accountservice.CreateAccountInput
	if err := c.Bind(&in); err != nil {
		return badRequest[accountservice.CreateAccountData](c)
	}
	return c.JSON(http.StatusOK, s.accounts.CreateAccount(c.Request().Context(), in))
}

// LogIn handles POST /api/v1/login.
func (s *Server) LogIn(c echo.Context) error {
	var in accountservice.LogInInput
	if err := c.Bind(&in); err != nil {
		return badRequest[accountservice.LogInData](c)
	}
	return c.JSON(http.StatusOK, s.accounts.LogIn(c.Request().Context(), in))
}

// Me handles GET /api/v1/me.
func (s *Server) Me(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, s.accounts.Me(c.Request().Context(), p))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var in orderservice.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return badRequest[orderservice.CreateOrderData](c)
	}
	in.IdempotencyKey = c.Request().Header.Get(IdempotencyKeyHeader)

	return c.JSON(http.StatusOK, s.orders.CreateOrder(c.Request().Context(), p, in))
}

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, s.orders.GetOrders(c.Request().Context(), p, c.QueryParam("status")))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, s.orders.GetOrder(c.Request().Context(), p, c.Param("id")))
}

// EditOrder handles PATCH /api/v1/orders/:id.
func (s *Server) EditOrder(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req editOrderRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return badRequest[queries.OrderResponse](c)
	}

	return c.JSON(http.StatusOK, s.orders.EditOrder(c.Request().Context(), p, c.Param("id"), req.Status))
}

// TakeOrder handles POST /api/v1/orders/:id/take.
func (s *Server) TakeOrder(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, s.orders.TakeOrder(c.Request().Context(), p, c.Param("id")))
}

func badRequest[T any](c echo.Context) error {
	return c.JSON(http.StatusBadRequest, result.Failure[T](msgInvalidBody))
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, result.Failure[struct{}](middleware.MsgUnauthorized))
}
