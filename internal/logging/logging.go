// Package logging owns the process-wide slog logger. Records are written as
// JSON to stdout and to a size-rotated file.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

const echoKey = "logger"

type ctxKey struct{}

type Options struct {
	// FilePath is the rotated log file. Empty disables file output.
	FilePath string
	Level    string
}

var (
	once sync.Once
	base *slog.Logger
)

// Init builds the global logger once; later calls return the first one.
//
//	logger := logging.Init("eats", logging.Options{FilePath: "./logs/eats.log"})
func Init(service string, opts Options) *slog.Logger {
	once.Do(func() {
		base = slog.New(slog.NewJSONHandler(writer(opts.FilePath), &slog.HandlerOptions{
			Level: ParseLevel(opts.Level),
		})).With("service", service)
	})
	return base
}

func writer(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	return io.MultiWriter(os.Stdout, rot)
}

// ParseLevel maps debug/info/warn/error to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Base returns the global logger, initialising a stdout-only one if needed.
func Base() *slog.Logger {
	return Init("eats", Options{})
}

// New returns a child of the global logger tagged with component.
func New(component string) *slog.Logger {
	return Base().With("component", component)
}

func WithCtx(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx returns the logger stored by WithCtx or the global one.
func FromCtx(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return Base()
}

// With stores a request-scoped logger in both the echo context and the
// request context.
func With(c echo.Context, l *slog.Logger) {
	c.Set(echoKey, l)
	req := c.Request()
	c.SetRequest(req.WithContext(WithCtx(req.Context(), l)))
}

func From(c echo.Context) *slog.Logger {
	if l, ok := c.Get(echoKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return Base()
}
