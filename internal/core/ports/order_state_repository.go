// Package ports defines the persistence contracts of the order statuses back-office.
// Adapters in internal/adapters/out implement them; command handlers consume them
// through the unit of work.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
)

// OrderStateRepository stores OrderState aggregates with their localized rows.
type OrderStateRepository interface {
	// Add persists a new order state. The aggregate must be valid.
	Add(ctx context.Context, aggregate *orderstate.OrderState) error

	// Update persists an existing order state, replacing all of its localized rows.
	Update(ctx context.Context, aggregate *orderstate.OrderState) error

	// Get returns the order state or errs.ErrObjectNotFound. Deleted states are returned too.
	Get(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	// It must be called inside an active unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error)

	// FindDuplicateName returns the first name of names already used, in the same language,
	// by another active order state, or "" when there is none. exclude may be the zero UUID.
	FindDuplicateName(ctx context.Context, names kernel.LocalizedString, exclude kernel.UUID) (string, error)
}
