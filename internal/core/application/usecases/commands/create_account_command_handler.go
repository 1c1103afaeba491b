package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
)

// CreateAccountCommandHandler registers accounts. A duplicate email comes
// back as principal.ErrEmailTaken from the repository.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{uowFactory: uowFactory}
}

func (h CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	account, err := principal.NewAccount(kernel.NewUUID(), cmd.Email(), cmd.Password(), cmd.Role(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, account); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return account.ID(), nil
}
