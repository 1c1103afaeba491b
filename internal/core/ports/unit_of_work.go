package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Commit also writes the
// domain events of every aggregate saved through its repositories to the
// outbox, inside the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository and AccountRepository are bound to the transaction
	// started by Begin.
	OrderRepository() OrderRepository
	AccountRepository() AccountRepository
}
