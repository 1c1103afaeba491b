package commands

import (
	"context"
	"errors"
	"fmt"

	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// LogInCommandHandler checks credentials and signs a token whose subject is
// the account id. It only reads, so it needs no unit of work.
type LogInCommandHandler struct {
	accounts ports.AccountRepository
	issuer   ports.TokenIssuer
}

func NewLogInCommandHandler(accounts ports.AccountRepository, issuer ports.TokenIssuer) LogInCommandHandler {
	return LogInCommandHandler{accounts: accounts, issuer: issuer}
}

// Handle returns ErrAccountNotFound for an unknown email and
// principal.ErrWrongPassword for a bad password.
func (h LogInCommandHandler) Handle(ctx context.Context, cmd LogInCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	account, err := h.accounts.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return "", err
	}

	if err = account.CheckPassword(cmd.Password()); err != nil {
		return "", err
	}

	return h.issuer.Sign(account.ID().String())
}
