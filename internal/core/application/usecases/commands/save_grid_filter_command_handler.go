package commands

import (
	"context"
	"time"

	"backoffice/internal/core/ports"
)

type SaveGridFilterCommandHandler struct {
	uowFactory GridFilterUoWFactory
}

func NewSaveGridFilterCommandHandler(uowFactory GridFilterUoWFactory) SaveGridFilterCommandHandler {
	return SaveGridFilterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SaveGridFilterCommandHandler) Handle(ctx context.Context, cmd SaveGridFilterCommand) error {
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

	if err := uow.GridFilterRepository().Save(ctx, ports.GridFilter{
		EmployeeID: cmd.EmployeeID(),
		GridID:     cmd.GridID(),
		Filters:    cmd.Filters(),
		UpdatedAt:  time.Now().UTC(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
