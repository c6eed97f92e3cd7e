package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrAddOrderReturnStateCommandIsNotConstructed = errors.New(
	"AddOrderReturnStateCommand must be created via NewAddOrderReturnStateCommand constructor",
)

type AddOrderReturnStateCommand struct { //nolint:recvcheck //using for validation
	names kernel.LocalizedString
	color string

	guard guard.ConstructorGuard
}

func NewAddOrderReturnStateCommand(names kernel.LocalizedString, color string) (AddOrderReturnStateCommand, error) {
	return AddOrderReturnStateCommand{
		names: names,
		color: color,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderReturnStateCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderReturnStateCommandIsNotConstructed)
}

func (c AddOrderReturnStateCommand) Names() kernel.LocalizedString {
	return c.names
}

func (c AddOrderReturnStateCommand) Color() string {
	return c.color
}
