package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	eatshttp "eats/internal/adapters/in/http"
	"eats/internal/core/application/auth"
	"eats/internal/core/application/usecases/accountservice"
	"eats/internal/core/application/usecases/orderservice"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/application/usecases/result"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) CreateOrder(ctx context.Context, customer principal.Principal, in orderservice.CreateOrderInput) result.Output[orderservice.CreateOrderData] {
	return m.Called(ctx, customer, in).Get(0).(result.Output[orderservice.CreateOrderData])
}

func (m *MockOrderService) GetOrders(ctx context.Context, user principal.Principal, status string) result.Output[[]queries.OrderResponse] {
	return m.Called(ctx, user, status).Get(0).(result.Output[[]queries.OrderResponse])
}

func (m *MockOrderService) GetOrder(ctx context.Context, user principal.Principal, id string) result.Output[queries.OrderResponse] {
	return m.Called(ctx, user, id).Get(0).(result.Output[queries.OrderResponse])
}

func (m *MockOrderService) EditOrder(ctx context.Context, user principal.Principal, id, status string) result.Output[queries.OrderResponse] {
	return m.Called(ctx, user, id, status).Get(0).(result.Output[queries.OrderResponse])
}

func (m *MockOrderService) TakeOrder(ctx context.Context, driver principal.Principal, id string) result.Output[queries.OrderResponse] {
	return m.Called(ctx, driver, id).Get(0).(result.Output[queries.OrderResponse])
}

type MockAccountService struct{ mock.Mock }

func (m *MockAccountService) CreateAccount(ctx context.Context, in accountservice.CreateAccountInput) result.Output[accountservice.CreateAccountData] {
	return m.Called(ctx, in).Get(0).(result.Output[accountservice.CreateAccountData])
}

func (m *MockAccountService) LogIn(ctx context.Context, in accountservice.LogInInput) result.Output[accountservice.LogInData] {
	return m.Called(ctx, in).Get(0).(result.Output[accountservice.LogInData])
}

func (m *MockAccountService) Me(ctx context.Context, user principal.Principal) result.Output[queries.AccountResponse] {
	return m.Called(ctx, user).Get(0).(result.Output[queries.AccountResponse])
}

// tokenTable authenticates tokens that are keys of the map.
type tokenTable map[string]principal.Principal

func (t tokenTable) Authenticate(_ context.Context, token string) (principal.Principal, bool) {
	p, ok := t[token]
	return p, ok
}

type envelope struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

type RouterSuite struct {
	suite.Suite

	orders   *MockOrderService
	accounts *MockAccountService
	customer principal.Principal
	owner    principal.Principal
	driver   principal.Principal
	registry *prometheus.Registry
	router   *echo.Echo
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.orders = new(MockOrderService)
	s.accounts = new(MockAccountService)
	s.customer = s.newPrincipal("eater@eats.test", principal.Customer)
	s.owner = s.newPrincipal("chef@eats.test", principal.Owner)
	s.driver = s.newPrincipal("rider@eats.test", principal.Delivery)
	s.registry = prometheus.NewRegistry()

	s.router = eatshttp.NewRouter(eatshttp.RouterDeps{
		Server: eatshttp.NewServer(s.orders, s.accounts),
		Authenticator: tokenTable{
			"customer-token": s.customer,
			"owner-token":    s.owner,
			"driver-token":   s.driver,
		},
		Policy:   auth.DefaultPolicy(),
		Logger:   slog.New(slog.DiscardHandler),
		Registry: s.registry,
	})
}

func (s *RouterSuite) newPrincipal(email string, role principal.Role) principal.Principal {
	p, err := principal.NewPrincipal(kernel.NewUUID(), email, role)
	s.Require().NoError(err)
	return p
}

func (s *RouterSuite) do(method, target, token, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("x-jwt", token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func (s *RouterSuite) TestHealth() {
	rec := s.do(nethttp.MethodGet, "/health", "", "")

	s.Equal(nethttp.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Request-Id"))
}

func (s *RouterSuite) TestPublicRoutesNeedNoToken() {
	in := accountservice.CreateAccountInput{Email: "new@eats.test", Password: "long-enough", Role: "CUSTOMER"}
	id := kernel.NewUUID()
	s.accounts.On("CreateAccount", mock.Anything, in).
		Return(result.Success(accountservice.CreateAccountData{ID: id})).Once()

	rec := s.do(nethttp.MethodPost, "/api/v1/accounts", "",
		`{"email":"new@eats.test","password":"long-enough","role":"CUSTOMER"}`)

	s.Equal(nethttp.StatusOK, rec.Code)
	env := s.decode(rec)
	s.True(env.OK)
	s.JSONEq(`{"id":"`+id.String()+`"}`, string(env.Data))
	s.accounts.AssertExpectations(s.T())
}

func (s *RouterSuite) TestServiceFailureIsStill200() {
	s.accounts.On("LogIn", mock.Anything, accountservice.LogInInput{Email: "a@eats.test", Password: "nope"}).
		Return(result.Failure[accountservice.LogInData](accountservice.MsgWrongPassword)).Once()

	rec := s.do(nethttp.MethodPost, "/api/v1/login", "", `{"email":"a@eats.test","password":"nope"}`)

	s.Equal(nethttp.StatusOK, rec.Code)
	env := s.decode(rec)
	s.False(env.OK)
	s.Equal(accountservice.MsgWrongPassword, env.Error)
}

func (s *RouterSuite) TestAnyRequiresPrincipal() {
	rec := s.do(nethttp.MethodGet, "/api/v1/me", "", "")

	s.Equal(nethttp.StatusUnauthorized, rec.Code)
	s.Equal("Unauthorized", s.decode(rec).Error)
	s.accounts.AssertNotCalled(s.T(), "Me", mock.Anything, mock.Anything)
}

func (s *RouterSuite) TestUnknownTokenIsAnonymous() {
	rec := s.do(nethttp.MethodGet, "/api/v1/orders", "forged", "")

	s.Equal(nethttp.StatusUnauthorized, rec.Code)
	s.orders.AssertNotCalled(s.T(), "GetOrders", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterSuite) TestWrongRoleIsForbidden() {
	rec := s.do(nethttp.MethodPost, "/api/v1/orders", "owner-token", `{"restaurantId":"x","items":[]}`)

	s.Equal(nethttp.StatusForbidden, rec.Code)
	env := s.decode(rec)
	s.False(env.OK)
	s.Equal("Unauthorized", env.Error)
	s.orders.AssertNotCalled(s.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterSuite) TestCreateOrderPassesPrincipalAndIdempotencyKey() {
	restaurantID := kernel.NewUUID().String()
	dishID := kernel.NewUUID().String()
	orderID := kernel.NewUUID()
	s.orders.On("CreateOrder", mock.Anything, s.customer, mock.MatchedBy(func(in orderservice.CreateOrderInput) bool {
		return in.RestaurantID == restaurantID &&
			len(in.Items) == 1 &&
			in.Items[0].DishID == dishID &&
			len(in.Items[0].Options) == 1 &&
			in.Items[0].Options[0].Name == "Size" &&
			in.IdempotencyKey == "retry-1"
	})).Return(result.Success(orderservice.CreateOrderData{OrderID: orderID})).Once()

	body := `{"restaurantId":"` + restaurantID + `","items":[{"dishId":"` + dishID +
		`","options":[{"name":"Size","choice":"Large"}]}]}`
	rec := s.do(nethttp.MethodPost, "/api/v1/orders", "customer-token", body, "X-Idempotency-Key", "retry-1")

	s.Equal(nethttp.StatusOK, rec.Code)
	env := s.decode(rec)
	s.True(env.OK)
	s.JSONEq(`{"orderId":"`+orderID.String()+`"}`, string(env.Data))
	s.orders.AssertExpectations(s.T())
}

func (s *RouterSuite) TestMalformedBodyIs400() {
	rec := s.do(nethttp.MethodPost, "/api/v1/orders", "customer-token", `{"restaurantId":`)

	s.Equal(nethttp.StatusBadRequest, rec.Code)
	s.False(s.decode(rec).OK)
	s.orders.AssertNotCalled(s.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterSuite) TestGetOrdersForwardsStatusFilter() {
	s.orders.On("GetOrders", mock.Anything, s.owner, "Cooking").
		Return(result.Success([]queries.OrderResponse{})).Once()

	rec := s.do(nethttp.MethodGet, "/api/v1/orders?status=Cooking", "owner-token", "")

	s.Equal(nethttp.StatusOK, rec.Code)
	s.True(s.decode(rec).OK)
	s.orders.AssertExpectations(s.T())
}

func (s *RouterSuite) TestGetOrderForwardsID() {
	id := kernel.NewUUID().String()
	s.orders.On("GetOrder", mock.Anything, s.customer, id).
		Return(result.Failure[queries.OrderResponse](orderservice.MsgCannotSeeOrder)).Once()

	rec := s.do(nethttp.MethodGet, "/api/v1/orders/"+id, "customer-token", "")

	s.Equal(nethttp.StatusOK, rec.Code)
	s.Equal(orderservice.MsgCannotSeeOrder, s.decode(rec).Error)
}

func (s *RouterSuite) TestEditOrder() {
	id := kernel.NewUUID().String()
	s.orders.On("EditOrder", mock.Anything, s.owner, id, "Cooking").
		Return(result.Success(queries.OrderResponse{Status: order.Cooking})).Once()

	rec := s.do(nethttp.MethodPatch, "/api/v1/orders/"+id, "owner-token", `{"status":"Cooking"}`)

	s.Equal(nethttp.StatusOK, rec.Code)
	s.True(s.decode(rec).OK)
	s.orders.AssertExpectations(s.T())
}

func (s *RouterSuite) TestTakeOrderIsDeliveryOnly() {
	id := kernel.NewUUID().String()

	rec := s.do(nethttp.MethodPost, "/api/v1/orders/"+id+"/take", "customer-token", "")
	s.Equal(nethttp.StatusForbidden, rec.Code)

	s.orders.On("TakeOrder", mock.Anything, s.driver, id).
		Return(result.Success(queries.OrderResponse{})).Once()
	rec = s.do(nethttp.MethodPost, "/api/v1/orders/"+id+"/take", "driver-token", "")
	s.Equal(nethttp.StatusOK, rec.Code)
	s.orders.AssertExpectations(s.T())
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.do(nethttp.MethodGet, "/health", "", "")

	rec := s.do(nethttp.MethodGet, "/metrics", "", "")

	s.Equal(nethttp.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestNewRouter_WithoutRegistry(t *testing.T) {
	router := eatshttp.NewRouter(eatshttp.RouterDeps{
		Server:        eatshttp.NewServer(new(MockOrderService), new(MockAccountService)),
		Authenticator: tokenTable{},
		Policy:        auth.DefaultPolicy(),
		Logger:        slog.New(slog.DiscardHandler),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}
