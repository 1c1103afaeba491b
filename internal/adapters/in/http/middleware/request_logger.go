package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eats/internal/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	RequestIDHeader = "X-Request-Id"

	reqBodyLimit = 8 * 1024
)

var redactedKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"authorization": {},
	"secret":        {},
}

// RequestLogger stores a request scoped logger (see logging.From) and logs
// one line per request. JSON request bodies are logged with credentials
// redacted.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
				req.Header.Set(RequestIDHeader, reqID)
			}
			c.Response().Header().Set(RequestIDHeader, reqID)

			l := base.With(
				"req_id", reqID,
				"method", req.Method,
				"path", c.Path(),
				"remote", c.RealIP(),
			)
			logging.With(c, l)
			req = c.Request()

			var body string
			if strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) && req.Body != nil {
				raw, truncated := readCapped(req.Body, reqBodyLimit)
				req.Body = io.NopCloser(bytes.NewReader(raw))
				body = string(redactJSON(raw))
				if truncated {
					body += "...truncated..."
				}
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			attrs := []any{
				"status", status,
				"dur_ms", time.Since(start).Milliseconds(),
				"resp_bytes", c.Response().Size,
			}
			if body != "" {
				attrs = append(attrs, "req_body", body)
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			if status >= http.StatusInternalServerError {
				l.Error("http_request", attrs...)
			} else {
				l.Info("http_request", attrs...)
			}
			return nil
		}
	}
}

// readCapped reads at most n bytes of rc for logging. The full body is
// returned so handlers still see all of it.
func readCapped(rc io.ReadCloser, n int) ([]byte, bool) {
	defer rc.Close()
	raw, _ := io.ReadAll(rc)
	return raw, len(raw) > n
}

func redactJSON(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}
	out, err := json.Marshal(scrub(v))
	if err != nil {
		return raw
	}
	if len(out) > reqBodyLimit {
		out = out[:reqBodyLimit]
	}
	return out
}

func scrub(x any) any {
	switch v := x.(type) {
	case map[string]any:
		for k, val := range v {
			if _, ok := redactedKeys[strings.ToLower(k)]; ok {
				v[k] = "***redacted***"
				continue
			}
			v[k] = scrub(val)
		}
		return v
	case []any:
		for i := range v {
			v[i] = scrub(v[i])
		}
		return v
	default:
		return v
	}
}
