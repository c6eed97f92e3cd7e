// Package commands contains the write side of the back-office: each command is an immutable
// value built by its constructor, and each handler runs it inside one unit of work.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of work views consumed by the handlers. Each handler depends only on the
// repositories it touches; ports.UnitOfWork satisfies all of them.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderStateRepoFactory interface {
		OrderStateRepository() ports.OrderStateRepository
	}

	OrderReturnStateRepoFactory interface {
		OrderReturnStateRepository() ports.OrderReturnStateRepository
	}

	GridFilterRepoFactory interface {
		GridFilterRepository() ports.GridFilterRepository
	}

	OrderStateUoW interface {
		TxManager
		OrderStateRepoFactory
	}

	OrderStateUoWFactory interface {
		Create() OrderStateUoW
	}

	OrderReturnStateUoW interface {
		TxManager
		OrderReturnStateRepoFactory
	}

	OrderReturnStateUoWFactory interface {
		Create() OrderReturnStateUoW
	}

	GridFilterUoW interface {
		TxManager
		GridFilterRepoFactory
	}

	GridFilterUoWFactory interface {
		Create() GridFilterUoW
	}
)
