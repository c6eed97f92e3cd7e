package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned after Begin share
// its transaction; before Begin they run on the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the current transaction. It fails when none is active.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It fails when none is active, so a
	// deferred Rollback after a successful Commit returns an error that callers ignore.
	Rollback(ctx context.Context) error

	OrderStateRepository() OrderStateRepository
	OrderReturnStateRepository() OrderReturnStateRepository
	GridFilterRepository() GridFilterRepository
}
