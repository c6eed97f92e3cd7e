package commands

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/pkg/errs"
)

type EditOrderReturnStateCommandHandler struct {
	uowFactory OrderReturnStateUoWFactory
}

func NewEditOrderReturnStateCommandHandler(uowFactory OrderReturnStateUoWFactory) EditOrderReturnStateCommandHandler {
	return EditOrderReturnStateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *EditOrderReturnStateCommandHandler) Handle(ctx context.Context, cmd EditOrderReturnStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var missing []string
	if cmd.Names().IsEmpty() {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(cmd.Color()) == "" {
		missing = append(missing, "color")
	}
	if len(missing) > 0 {
		return orderreturnstate.NewMissingRequiredFieldsError(missing...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderReturnStateRepository()
	state, err := repo.Get(ctx, cmd.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return orderreturnstate.NewNotFoundError(cmd.ID())
	}
	if err != nil {
		return err
	}

	if err = state.Rename(cmd.Names()); err != nil {
		return err
	}
	if err = state.ChangeColor(cmd.Color()); err != nil {
		return err
	}

	if err = repo.Update(ctx, state); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
