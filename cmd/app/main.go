package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eats/cmd"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/rabbitmq"
	"eats/internal/adapters/out/redis"
	"eats/internal/logging"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := cmd.LoadConfig(os.Getenv("EATS_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Init(cfg.App.Name, logging.Options{FilePath: cfg.App.LogFile, Level: cfg.App.LogLevel})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		log.Fatalf("eats: %v", err)
	}
}

func run(ctx context.Context, cfg cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	infra := cmd.Infra{Registry: registry, Logger: logger}

	if cfg.Redis.Addr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		infra.Idempotency = redis.NewIdempotencyStore(rdb, cfg.Idempotency.TTL)
	} else {
		logger.Warn("redis is not configured, idempotency keys are ignored")
	}

	if cfg.RabbitMQ.URL != "" {
		var publisher *rabbitmq.Publisher
		publisher, err = rabbitmq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
		infra.Publisher = publisher
	} else {
		logger.Warn("rabbitmq is not configured, order events stay in the outbox")
	}

	root, err := cmd.NewCompositionRoot(cfg, gormDB, infra)
	if err != nil {
		return err
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.App.HTTPPort,
		Handler:      root.CreateRouter(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
