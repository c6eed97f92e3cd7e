package commands

import (
	"context"
	"errors"
	"maps"
	"slices"

	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"
)

// EditOrderStateCommandHandler applies an EditOrderStateCommand under a row lock, so
// expected-flag checks and the write happen in the same transaction.
type EditOrderStateCommandHandler struct {
	uowFactory OrderStateUoWFactory
}

func NewEditOrderStateCommandHandler(uowFactory OrderStateUoWFactory) EditOrderStateCommandHandler {
	return EditOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns orderstate.Error with KindNotFound for unknown or deleted states.
func (h *EditOrderStateCommandHandler) Handle(ctx context.Context, cmd EditOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderStateRepository()
	state, err := repo.GetForUpdate(ctx, cmd.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return orderstate.NewNotFoundError(cmd.ID())
	}
	if err != nil {
		return err
	}
	if state.IsDeleted() {
		return orderstate.NewNotFoundError(cmd.ID())
	}

	expected := cmd.ExpectedFlags()
	for _, flag := range slices.Sorted(maps.Keys(expected)) {
		if state.Has(flag) != expected[flag] {
			return orderstate.NewConcurrentModificationError(cmd.ID(), flag)
		}
	}

	if err = applyOrderStateEdit(state, cmd); err != nil {
		return err
	}

	if names, ok := cmd.Names(); ok {
		duplicate, dupErr := repo.FindDuplicateName(ctx, names, state.ID())
		if dupErr != nil {
			return dupErr
		}
		if duplicate != "" {
			return orderstate.NewDuplicateNameError(duplicate)
		}
	}

	if err = repo.Update(ctx, state); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyOrderStateEdit(state *orderstate.OrderState, cmd EditOrderStateCommand) error {
	var missing []string

	if names, ok := cmd.Names(); ok {
		if names.IsEmpty() {
			missing = append(missing, "name")
		} else if err := state.Rename(names); err != nil {
			return err
		}
	}
	if color, ok := cmd.Color(); ok {
		if color == "" {
			missing = append(missing, "color")
		} else if err := state.ChangeColor(color); err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		return orderstate.NewMissingRequiredFieldsError(missing...)
	}

	if templates, ok := cmd.Templates(); ok {
		state.ChangeTemplates(templates)
	}

	flags := cmd.Flags()
	for _, flag := range slices.Sorted(maps.Keys(flags)) {
		if err := state.SetFlag(flag, flags[flag]); err != nil {
			return err
		}
	}

	return nil
}
