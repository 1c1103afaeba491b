// Package commands contains the operations that change state: placing,
// editing and taking orders, and registering and logging in accounts.
// Every command is validated by its constructor and every handler runs its
// writes inside one unit of work.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderUoW manages transactions for order-only operations.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   // ... load, mutate and save through uow.OrderRepository()
	//
	//   return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountUoW manages transactions for account registration.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
