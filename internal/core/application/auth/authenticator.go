package auth

import (
	"context"
	"log/slog"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/core/ports"
)

// Authenticator turns a raw token into a principal.
type Authenticator struct {
	verifier ports.TokenVerifier
	accounts ports.AccountRepository
	logger   *slog.Logger
}

func NewAuthenticator(verifier ports.TokenVerifier, accounts ports.AccountRepository, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		verifier: verifier,
		accounts: accounts,
		logger:   logger.With("component", "authenticator"),
	}
}

// Authenticate returns the principal the token belongs to. Every failure is
// reported as (zero, false) and logged at debug level.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (principal.Principal, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return principal.Principal{}, false
	}

	subject, err := a.verifier.Verify(token)
	if err != nil {
		a.logger.DebugContext(ctx, "token rejected", "error", err)
		return principal.Principal{}, false
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		a.logger.DebugContext(ctx, "token subject is not an id", "subject", subject, "error", err)
		return principal.Principal{}, false
	}

	account, err := a.accounts.Get(ctx, id)
	if err != nil {
		a.logger.DebugContext(ctx, "token subject not loaded", "subject", subject, "error", err)
		return principal.Principal{}, false
	}

	return account.Principal(), true
}
