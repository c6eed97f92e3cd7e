package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
)

type AddOrderReturnStateCommandHandler struct {
	uowFactory OrderReturnStateUoWFactory
}

func NewAddOrderReturnStateCommandHandler(uowFactory OrderReturnStateUoWFactory) AddOrderReturnStateCommandHandler {
	return AddOrderReturnStateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddOrderReturnStateCommandHandler) Handle(ctx context.Context, cmd AddOrderReturnStateCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	state, err := orderreturnstate.NewOrderReturnState(kernel.NewUUID(), cmd.Names(), cmd.Color())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderReturnStateRepository().Add(ctx, state); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return state.ID(), nil
}
