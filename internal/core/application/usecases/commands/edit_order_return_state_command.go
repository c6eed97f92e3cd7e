package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrEditOrderReturnStateCommandIsNotConstructed = errors.New(
	"EditOrderReturnStateCommand must be created via NewEditOrderReturnStateCommand constructor",
)

// EditOrderReturnStateCommand replaces the names and color of an order return state.
type EditOrderReturnStateCommand struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	names kernel.LocalizedString
	color string

	guard guard.ConstructorGuard
}

func NewEditOrderReturnStateCommand(
	id kernel.UUID,
	names kernel.LocalizedString,
	color string,
) (EditOrderReturnStateCommand, error) {
	cmd := EditOrderReturnStateCommand{
		names: names,
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return EditOrderReturnStateCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderReturnStateCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderReturnStateCommandIsNotConstructed)
}

func (c EditOrderReturnStateCommand) ID() kernel.UUID {
	return c.id
}

func (c EditOrderReturnStateCommand) Names() kernel.LocalizedString {
	return c.names
}

func (c EditOrderReturnStateCommand) Color() string {
	return c.color
}

func (c *EditOrderReturnStateCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderReturnStateId", err)
	}

	c.id = id
	return nil
}
