package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
)

// AddOrderStateCommandHandler creates an order state after checking that none of its
// names is already used by an active order state in the same language.
type AddOrderStateCommandHandler struct {
	uowFactory OrderStateUoWFactory
}

func NewAddOrderStateCommandHandler(uowFactory OrderStateUoWFactory) AddOrderStateCommandHandler {
	return AddOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identifier of the new order state.
func (h *AddOrderStateCommandHandler) Handle(ctx context.Context, cmd AddOrderStateCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	state, err := orderstate.NewOrderState(kernel.NewUUID(), cmd.Names(), cmd.Color(), cmd.Templates(), cmd.Flags())
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

	repo := uow.OrderStateRepository()
	duplicate, err := repo.FindDuplicateName(ctx, state.Names(), kernel.UUID{})
	if err != nil {
		return kernel.UUID{}, err
	}
	if duplicate != "" {
		return kernel.UUID{}, orderstate.NewDuplicateNameError(duplicate)
	}

	if err = repo.Add(ctx, state); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return state.ID(), nil
}
