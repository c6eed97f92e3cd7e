package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
)

// OrderReturnStateRepository stores OrderReturnState aggregates with their localized names.
type OrderReturnStateRepository interface {
	Add(ctx context.Context, aggregate *orderreturnstate.OrderReturnState) error
	Update(ctx context.Context, aggregate *orderreturnstate.OrderReturnState) error
	// Get returns the order return state or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*orderreturnstate.OrderReturnState, error)
}
