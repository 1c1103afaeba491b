// Package orderservice is the entry point for order operations after the
// authorization guard. It parses transport input, runs the command and query
// handlers and converts every failure into a result.Output with a stable
// message.
package orderservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/application/usecases/result"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
)

// Messages returned in result.Output.Error.
const (
	MsgRestaurantNotFound  = "Restaurant not found"
	MsgDishNotFound        = "Dish not found"
	MsgOrderNotFound       = "Order not found"
	MsgCannotSeeOrder      = "You can't see that order"
	MsgCannotEditOrder     = "You can't edit that order"
	MsgAlreadyHasDriver    = "This order already has a driver"
	MsgConcurrentChange    = "Order was modified concurrently, try again"
	MsgInvalidStatus       = "Invalid status"
	MsgRequestInProgress   = "A request with this idempotency key is in progress"
	MsgCouldNotCreateOrder = "Could not create order"
	MsgCouldNotLoadOrders  = "Could not load orders"
	MsgCouldNotLoadOrder   = "Could not load order"
	MsgCouldNotEditOrder   = "Could not edit order"
	MsgCouldNotTakeOrder   = "Could not take order"
)

// Metrics receives order lifecycle counts. It may be nil.
type Metrics interface {
	OrderPlaced()
	OrderStatusChanged(status order.Status)
	OrderTaken()
}

// Handlers groups the use case handlers the service runs.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	EditOrder   commands.EditOrderCommandHandler
	TakeOrder   commands.TakeOrderCommandHandler
	GetOrders   queries.GetOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
}

type Service struct {
	handlers Handlers
	metrics  Metrics
	logger   *slog.Logger
}

func New(handlers Handlers, metrics Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "order-service"),
	}
}

type CreateOrderItemInput struct {
	DishID  string             `json:"dishId"`
	Options []order.ItemOption `json:"options"`
}

type CreateOrderInput struct {
	RestaurantID string                 `json:"restaurantId"`
	Items        []CreateOrderItemInput `json:"items"`

	// IdempotencyKey comes from a header, not from the body.
	IdempotencyKey string `json:"-"`
}

type CreateOrderData struct {
	OrderID kernel.UUID `json:"orderId"`
}

// CreateOrder places an order for customer. Nothing is written when the
// restaurant or any dish is missing.
func (s *Service) CreateOrder(ctx context.Context, customer principal.Principal, in CreateOrderInput) result.Output[CreateOrderData] {
	restaurantID, err := kernel.UUIDFromString(in.RestaurantID)
	if err != nil {
		return result.Failure[CreateOrderData](MsgRestaurantNotFound)
	}

	items := make([]commands.CreateOrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		dishID, parseErr := kernel.UUIDFromString(item.DishID)
		if parseErr != nil {
			return result.Failure[CreateOrderData](MsgDishNotFound)
		}
		items = append(items, commands.CreateOrderItem{DishID: dishID, Options: item.Options})
	}

	cmd, err := commands.NewCreateOrderCommand(customer, restaurantID, items, in.IdempotencyKey)
	if err != nil {
		return failure[CreateOrderData](ctx, s.logger, MsgCouldNotCreateOrder, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return failure[CreateOrderData](ctx, s.logger, MsgCouldNotCreateOrder, err)
	}

	s.metrics.OrderPlaced()
	return result.Success(CreateOrderData{OrderID: orderID})
}

// GetOrders lists the orders user takes part in. An empty status lists all.
func (s *Service) GetOrders(ctx context.Context, user principal.Principal, status string) result.Output[[]queries.OrderResponse] {
	var filter *order.Status
	if strings.TrimSpace(status) != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return result.Failure[[]queries.OrderResponse](MsgInvalidStatus)
		}
		filter = &parsed
	}

	query, err := queries.NewGetOrdersQuery(user, filter)
	if err != nil {
		return failure[[]queries.OrderResponse](ctx, s.logger, MsgCouldNotLoadOrders, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx, query)
	if err != nil {
		return failure[[]queries.OrderResponse](ctx, s.logger, MsgCouldNotLoadOrders, err)
	}
	return result.Success(orders)
}

// GetOrder returns one order if user is one of its participants.
func (s *Service) GetOrder(ctx context.Context, user principal.Principal, id string) result.Output[queries.OrderResponse] {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return result.Failure[queries.OrderResponse](MsgOrderNotFound)
	}

	query, err := queries.NewGetOrderQuery(user, orderID)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotLoadOrder, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotLoadOrder, err)
	}
	return result.Success(found)
}

// EditOrder changes the status of an order. The total is never touched.
func (s *Service) EditOrder(ctx context.Context, user principal.Principal, id, status string) result.Output[queries.OrderResponse] {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return result.Failure[queries.OrderResponse](MsgOrderNotFound)
	}
	target, err := order.ParseStatus(status)
	if err != nil {
		return result.Failure[queries.OrderResponse](MsgInvalidStatus)
	}

	cmd, err := commands.NewEditOrderCommand(user, orderID, target)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotEditOrder, err)
	}

	updated, err := s.handlers.EditOrder.Handle(ctx, cmd)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotEditOrder, err)
	}

	s.metrics.OrderStatusChanged(updated.Status())
	return result.Success(queries.NewOrderResponse(updated))
}

// TakeOrder makes driver the delivery agent of an order without one.
func (s *Service) TakeOrder(ctx context.Context, driver principal.Principal, id string) result.Output[queries.OrderResponse] {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return result.Failure[queries.OrderResponse](MsgOrderNotFound)
	}

	cmd, err := commands.NewTakeOrderCommand(driver, orderID)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotTakeOrder, err)
	}

	taken, err := s.handlers.TakeOrder.Handle(ctx, cmd)
	if err != nil {
		return failure[queries.OrderResponse](ctx, s.logger, MsgCouldNotTakeOrder, err)
	}

	s.metrics.OrderTaken()
	return result.Success(queries.NewOrderResponse(taken))
}

// failure maps known errors to their message and logs the rest, which are
// reported as fallback.
func failure[T any](ctx context.Context, logger *slog.Logger, fallback string, err error) result.Output[T] {
	if msg, ok := knownMessage(err); ok {
		logger.DebugContext(ctx, "request denied", "reason", msg, "error", err)
		return result.Failure[T](msg)
	}
	logger.ErrorContext(ctx, fallback, "error", err)
	return result.Failure[T](fallback)
}

func knownMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, commands.ErrRestaurantNotFound):
		return MsgRestaurantNotFound, true
	case errors.Is(err, commands.ErrDishNotFound):
		return MsgDishNotFound, true
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, queries.ErrOrderNotFound):
		return MsgOrderNotFound, true
	case errors.Is(err, order.ErrNotParticipant):
		return MsgCannotSeeOrder, true
	case errors.Is(err, order.ErrCannotEdit):
		return MsgCannotEditOrder, true
	case errors.Is(err, order.ErrAlreadyHasDriver):
		return MsgAlreadyHasDriver, true
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return MsgConcurrentChange, true
	case errors.Is(err, commands.ErrRequestInProgress):
		return MsgRequestInProgress, true
	default:
		return "", false
	}
}

type noopMetrics struct{}

func (noopMetrics) OrderPlaced()                    {}
func (noopMetrics) OrderStatusChanged(order.Status) {}
func (noopMetrics) OrderTaken()                     {}
