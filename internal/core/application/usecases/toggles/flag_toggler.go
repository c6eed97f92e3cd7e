// Package toggles flips a single boolean of an order state from the listing.
package toggles

import (
	"context"
	"fmt"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"
)

type (
	OrderStateReader interface {
		Handle(ctx context.Context, query queries.GetOrderStateForEditingQuery) (queries.EditableOrderState, error)
	}

	OrderStateEditor interface {
		Handle(ctx context.Context, cmd commands.EditOrderStateCommand) error
	}
)

// FlagToggler reads the current value of a flag and writes its negation. The edit carries
// the value that was read, so a toggle racing another one fails with
// orderstate.ErrOrderStateConcurrentModification instead of undoing it.
type FlagToggler struct {
	reader OrderStateReader
	editor OrderStateEditor
}

func NewFlagToggler(reader OrderStateReader, editor OrderStateEditor) *FlagToggler {
	return &FlagToggler{reader: reader, editor: editor}
}

// Toggle returns the value the flag was set to.
func (t *FlagToggler) Toggle(ctx context.Context, id kernel.UUID, flag orderstate.Flag) (bool, error) {
	if !flag.IsToggleable() {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"flag",
			fmt.Errorf("%s cannot be toggled from the listing", flag),
		)
	}

	query, err := queries.NewGetOrderStateForEditingQuery(id)
	if err != nil {
		return false, err
	}
	state, err := t.reader.Handle(ctx, query)
	if err != nil {
		return false, err
	}

	current := state.Flags.Has(flag)
	cmd, err := commands.NewEditOrderStateCommand(id,
		commands.WithFlag(flag, !current),
		commands.WithExpectedFlag(flag, current),
	)
	if err != nil {
		return false, err
	}
	if err = t.editor.Handle(ctx, cmd); err != nil {
		return false, err
	}

	return !current, nil
}
