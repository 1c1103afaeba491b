package middleware

import (
	"context"

	"eats/internal/core/application/auth"
	"eats/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

// TokenHeader carries the signed principal token.
const TokenHeader = "x-jwt"

const principalKey = "principal"

// Authenticator is satisfied by auth.Authenticator.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (principal.Principal, bool)
}

// Authentication attaches the principal of a valid token to the request.
// It never rejects: without a usable token the request simply continues
// anonymous, and the Guard decides.
func Authentication(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return next(c)
			}

			req := c.Request()
			p, ok := a.Authenticate(req.Context(), token)
			if !ok {
				return next(c)
			}

			c.Set(principalKey, p)
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Authentication.
func PrincipalFrom(c echo.Context) (principal.Principal, bool) {
	if p, ok := c.Get(principalKey).(principal.Principal); ok {
		return p, true
	}
	return auth.PrincipalFrom(c.Request().Context())
}
