package cmd

import (
	"log/slog"

	eatshttp "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/jwt"
	"eats/internal/adapters/out/metrics"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/accountrepo"
	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/outboxrepo"
	"eats/internal/core/application/auth"
	"eats/internal/core/application/usecases/accountservice"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/orderservice"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
	"eats/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Infra holds the clients main opened. Idempotency and Publisher are
// optional: without them idempotency keys are ignored and the outbox relay
// does not run.
type Infra struct {
	Idempotency ports.IdempotencyStore
	Publisher   ports.EventPublisher
	Registry    *prometheus.Registry
	Logger      *slog.Logger
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *jwt.TokenService
	infra      Infra
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, infra Infra) (*CompositionRoot, error) {
	tokens, err := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	if infra.Logger == nil {
		infra.Logger = slog.Default()
	}
	if infra.Registry == nil {
		infra.Registry = prometheus.NewRegistry()
	}
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		infra:      infra,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

// readOrders reads outside any transaction. It must only be used by queries.
func (c *CompositionRoot) readOrders() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) accounts() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(c.gormDB)
}

func (c *CompositionRoot) catalog() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.catalog(),
		c.infra.Idempotency,
		c.cfg.Orders.DishLookupConcurrency,
	)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateLogInCommandHandler() commands.LogInCommandHandler {
	return commands.NewLogInCommandHandler(c.accounts(), c.tokens)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), c.infra.Publisher)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.readOrders(), c.catalog())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readOrders())
}

func (c *CompositionRoot) CreateOrderService() *orderservice.Service {
	return orderservice.New(orderservice.Handlers{
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		EditOrder:   c.CreateEditOrderCommandHandler(),
		TakeOrder:   c.CreateTakeOrderCommandHandler(),
		GetOrders:   c.CreateGetOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	}, metrics.NewOrderMetrics(c.infra.Registry), c.infra.Logger)
}

func (c *CompositionRoot) CreateAccountService() *accountservice.Service {
	return accountservice.New(accountservice.Handlers{
		CreateAccount: c.CreateCreateAccountCommandHandler(),
		LogIn:         c.CreateLogInCommandHandler(),
		GetAccount:    queries.NewGetAccountQueryHandler(),
	}, c.infra.Logger)
}

func (c *CompositionRoot) CreateAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator(c.tokens, c.accounts(), c.infra.Logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return eatshttp.NewRouter(eatshttp.RouterDeps{
		Server:        eatshttp.NewServer(c.CreateOrderService(), c.CreateAccountService()),
		Authenticator: c.CreateAuthenticator(),
		Policy:        auth.DefaultPolicy(),
		Logger:        c.infra.Logger.With("component", "http"),
		Registry:      c.infra.Registry,
	})
}

// CreateJobManager returns a manager with the outbox relay when a publisher
// is configured, and an empty one otherwise.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.infra.Publisher == nil {
		return jobs.NewJobManager(), nil
	}

	cmd, err := commands.NewRelayOutboxCommand(c.cfg.Relay.BatchSize)
	if err != nil {
		return nil, err
	}
	relay := jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), cmd, c.cfg.Relay.Schedule, c.infra.Logger)
	return jobs.NewJobManager(relay), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
