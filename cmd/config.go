package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides. Nested keys use "__":
// EATS_DB__HOST, EATS_JWT__SECRET.
const EnvPrefix = "EATS_"

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPPort string `koanf:"http_port"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		IdleTimeout     time.Duration `koanf:"idle_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	DB struct {
		Host     string `koanf:"host"`
		Port     string `koanf:"port"`
		User     string `koanf:"user"`
		Password string `koanf:"password"`
		Name     string `koanf:"name"`
		SslMode  string `koanf:"sslmode"`
	} `koanf:"db"`

	JWT struct {
		Secret string        `koanf:"secret"`
		Issuer string        `koanf:"issuer"`
		TTL    time.Duration `koanf:"ttl"`
	} `koanf:"jwt"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Idempotency struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"idempotency"`

	RabbitMQ struct {
		URL      string `koanf:"url"`
		Exchange string `koanf:"exchange"`
	} `koanf:"rabbitmq"`

	Orders struct {
		DishLookupConcurrency int `koanf:"dish_lookup_concurrency"`
	} `koanf:"orders"`

	Relay struct {
		Schedule  string `koanf:"schedule"`
		BatchSize int    `koanf:"batch_size"`
	} `koanf:"relay"`
}

// DefaultConfig holds the values used when neither the file nor the
// environment sets a key.
func DefaultConfig() Config {
	var c Config
	c.App.Name = "eats"
	c.App.HTTPPort = "8080"
	c.App.LogLevel = "info"
	c.HTTP.ReadTimeout = 10 * time.Second
	c.HTTP.WriteTimeout = 10 * time.Second
	c.HTTP.IdleTimeout = 60 * time.Second
	c.HTTP.ShutdownTimeout = 15 * time.Second
	c.DB.Port = "5432"
	c.DB.SslMode = "disable"
	c.JWT.Issuer = "eats"
	c.JWT.TTL = 24 * time.Hour
	c.Idempotency.TTL = 24 * time.Hour
	c.RabbitMQ.Exchange = "orders.events"
	c.Orders.DishLookupConcurrency = 4
	c.Relay.Schedule = "*/5 * * * * *"
	c.Relay.BatchSize = 100
	return c
}

// LoadConfig reads, in increasing priority: defaults, the optional YAML file
// at path, a .env file if present, and EATS_ environment variables.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ToLower(s)
}

func (c Config) Validate() error {
	var errs []error
	if c.App.HTTPPort == "" {
		errs = append(errs, errors.New("app.http_port required"))
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
		errs = append(errs, errors.New("db.host, db.user and db.name required"))
	}
	if len(c.JWT.Secret) < 16 {
		errs = append(errs, errors.New("jwt.secret must be at least 16 bytes"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("jwt.ttl must be positive"))
	}
	if c.Orders.DishLookupConcurrency < 1 {
		errs = append(errs, errors.New("orders.dish_lookup_concurrency must be at least 1"))
	}
	if c.RabbitMQ.URL != "" && (c.Relay.BatchSize < 1 || c.Relay.BatchSize > 1000) {
		errs = append(errs, errors.New("relay.batch_size must be within [1, 1000]"))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SslMode,
	)
}
