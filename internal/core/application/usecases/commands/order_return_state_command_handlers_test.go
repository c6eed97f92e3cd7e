package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderReturnStateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOrderReturnStateCommand(
		kernel.NewLocalizedString(map[string]string{"en": "Waiting for package"}),
		"#4169E1",
	)
	require.NoError(t, err)

	repo := new(MockOrderReturnStateRepository)
	uow := new(MockOrderReturnStateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderReturnStateRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*orderreturnstate.OrderReturnState")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderReturnStateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderReturnStateCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, id.IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderReturnStateCommandHandler_Handle_InvalidColor(t *testing.T) {
	cmd, err := commands.NewAddOrderReturnStateCommand(
		kernel.NewLocalizedString(map[string]string{"en": "Waiting for package"}),
		"royalblue",
	)
	require.NoError(t, err)
	factory := new(MockOrderReturnStateUoWFactory)

	h := commands.NewAddOrderReturnStateCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)

	var returnErr *orderreturnstate.Error
	require.ErrorAs(t, err, &returnErr)
	assert.Equal(t, orderreturnstate.InvalidColor, returnErr.Constraint)
	factory.AssertNotCalled(t, "Create")
}

func TestEditOrderReturnStateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	color, err := kernel.NewColor("#4169E1")
	require.NoError(t, err)
	state, err := orderreturnstate.RestoreOrderReturnState(
		kernel.NewUUID(),
		kernel.NewLocalizedString(map[string]string{"en": "Waiting for package"}),
		color,
	)
	require.NoError(t, err)
	cmd, err := commands.NewEditOrderReturnStateCommand(
		state.ID(),
		kernel.NewLocalizedString(map[string]string{"en": "Package received"}),
		"#01B887",
	)
	require.NoError(t, err)

	repo := new(MockOrderReturnStateRepository)
	uow := new(MockOrderReturnStateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderReturnStateRepository").Return(repo).Once(),
		repo.On("Get", ctx, state.ID()).Return(state, nil).Once(),
		repo.On("Update", ctx, state).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderReturnStateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderReturnStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Package received", state.Name("en"))
	assert.Equal(t, "#01B887", state.Color().String())
	uow.AssertExpectations(t)
}

func TestEditOrderReturnStateCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewEditOrderReturnStateCommand(
		id,
		kernel.NewLocalizedString(map[string]string{"en": "Package received"}),
		"#01B887",
	)
	require.NoError(t, err)

	repo := new(MockOrderReturnStateRepository)
	uow := new(MockOrderReturnStateUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderReturnStateRepository").Return(repo).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderReturnStateId", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderReturnStateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderReturnStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, orderreturnstate.ErrOrderReturnStateNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditOrderReturnStateCommandHandler_Handle_MissingFields(t *testing.T) {
	cmd, err := commands.NewEditOrderReturnStateCommand(kernel.NewUUID(), kernel.NewLocalizedString(nil), " ")
	require.NoError(t, err)
	factory := new(MockOrderReturnStateUoWFactory)

	h := commands.NewEditOrderReturnStateCommandHandler(factory)
	err = h.Handle(t.Context(), cmd)

	var returnErr *orderreturnstate.Error
	require.ErrorAs(t, err, &returnErr)
	assert.Equal(t, []string{"name", "color"}, returnErr.MissingFields)
	factory.AssertNotCalled(t, "Create")
}

func TestNewEditOrderReturnStateCommand_ZeroID(t *testing.T) {
	_, err := commands.NewEditOrderReturnStateCommand(kernel.UUID{}, kernel.NewLocalizedString(nil), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
