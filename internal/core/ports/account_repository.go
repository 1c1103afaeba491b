package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
)

// AccountRepository is the Principal Store.
type AccountRepository interface {
	// Add returns principal.ErrEmailTaken when the email is already registered.
	Add(ctx context.Context, account *principal.Account) error

	// Get and GetByEmail return errs.ObjectNotFoundError when nothing matches.
	Get(ctx context.Context, id kernel.UUID) (*principal.Account, error)
	GetByEmail(ctx context.Context, email string) (*principal.Account, error)
}
