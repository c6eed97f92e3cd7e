package commands

import (
	"context"
	"time"
)

type PurgeGridFiltersCommandHandler struct {
	uowFactory GridFilterUoWFactory
}

func NewPurgeGridFiltersCommandHandler(uowFactory GridFilterUoWFactory) PurgeGridFiltersCommandHandler {
	return PurgeGridFiltersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of filters removed.
func (h *PurgeGridFiltersCommandHandler) Handle(ctx context.Context, cmd PurgeGridFiltersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.GridFilterRepository().DeleteOlderThan(ctx, time.Now().UTC().Add(-cmd.OlderThan()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
