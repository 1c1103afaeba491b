package middleware

import (
	"net/http"

	"eats/internal/core/application/auth"
	"eats/internal/core/application/usecases/result"
	"eats/internal/core/domain/model/principal"
	"eats/internal/logging"

	"github.com/labstack/echo/v4"
)

const MsgUnauthorized = "Unauthorized"

// Guard checks operation against policy before the handler runs. A denied
// anonymous request gets 401, a denied authenticated one 403.
func Guard(policy auth.Policy, operation string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var who *principal.Principal
			if p, ok := PrincipalFrom(c); ok {
				who = &p
			}

			if err := policy.Authorize(operation, who); err != nil {
				status := http.StatusUnauthorized
				if who != nil {
					status = http.StatusForbidden
				}
				logging.From(c).Debug("operation denied", "operation", operation, "status", status)
				return c.JSON(status, result.Failure[struct{}](MsgUnauthorized))
			}
			return next(c)
		}
	}
}
