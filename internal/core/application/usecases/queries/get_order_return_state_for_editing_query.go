package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderReturnStateForEditingQueryIsNotConstructed = errors.New(
	"GetOrderReturnStateForEditingQuery must be created via NewGetOrderReturnStateForEditingQuery constructor",
)

type GetOrderReturnStateForEditingQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetOrderReturnStateForEditingQuery(id kernel.UUID) (GetOrderReturnStateForEditingQuery, error) {
	if id.IsZero() {
		return GetOrderReturnStateForEditingQuery{}, errs.NewValueIsRequiredError("orderReturnStateId")
	}
	return GetOrderReturnStateForEditingQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderReturnStateForEditingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReturnStateForEditingQueryIsNotConstructed)
}

func (q GetOrderReturnStateForEditingQuery) ID() kernel.UUID {
	return q.id
}

type EditableOrderReturnState struct {
	ID    kernel.UUID
	Names kernel.LocalizedString
	Color string
}
