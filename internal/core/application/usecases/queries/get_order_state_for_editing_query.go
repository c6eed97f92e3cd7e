// Package queries contains the read side of the back-office. Handlers read straight from
// the tables with SQL through GORM and return read models shaped for the views.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderStateForEditingQueryIsNotConstructed = errors.New(
	"GetOrderStateForEditingQuery must be created via NewGetOrderStateForEditingQuery constructor",
)

// GetOrderStateForEditingQuery loads one order state with every language, as the edit form
// needs it.
//
// Example:
//
//	query, err := NewGetOrderStateForEditingQuery(id)
//	if err != nil {
//	    return err
//	}
//	state, err := handler.Handle(ctx, query)
type GetOrderStateForEditingQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetOrderStateForEditingQuery(id kernel.UUID) (GetOrderStateForEditingQuery, error) {
	if id.IsZero() {
		return GetOrderStateForEditingQuery{}, errs.NewValueIsRequiredError("orderStateId")
	}
	return GetOrderStateForEditingQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStateForEditingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStateForEditingQueryIsNotConstructed)
}

func (q GetOrderStateForEditingQuery) ID() kernel.UUID {
	return q.id
}

// EditableOrderState is the read model of the order state edit form.
type EditableOrderState struct {
	ID        kernel.UUID
	Names     kernel.LocalizedString
	Color     string
	Templates kernel.LocalizedString
	Flags     orderstate.Flags
}
