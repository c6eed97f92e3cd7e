package http_test

import (
	"context"

	"backoffice/internal/core/application/grid"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockEditableOrderStateReader struct{ mock.Mock }

func (m *MockEditableOrderStateReader) Handle(
	ctx context.Context,
	query queries.GetOrderStateForEditingQuery,
) (queries.EditableOrderState, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EditableOrderState), args.Error(1)
}

type MockOrderStateAdder struct{ mock.Mock }

func (m *MockOrderStateAdder) Handle(ctx context.Context, cmd commands.AddOrderStateCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockOrderStateEditor struct{ mock.Mock }

func (m *MockOrderStateEditor) Handle(ctx context.Context, cmd commands.EditOrderStateCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockEditableOrderReturnStateReader struct{ mock.Mock }

func (m *MockEditableOrderReturnStateReader) Handle(
	ctx context.Context,
	query queries.GetOrderReturnStateForEditingQuery,
) (queries.EditableOrderReturnState, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EditableOrderReturnState), args.Error(1)
}

type MockOrderReturnStateAdder struct{ mock.Mock }

func (m *MockOrderReturnStateAdder) Handle(ctx context.Context, cmd commands.AddOrderReturnStateCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockOrderReturnStateEditor struct{ mock.Mock }

func (m *MockOrderReturnStateEditor) Handle(ctx context.Context, cmd commands.EditOrderReturnStateCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSavedGridFilterReader struct{ mock.Mock }

func (m *MockSavedGridFilterReader) Handle(ctx context.Context, query queries.GetSavedGridFilterQuery) (string, bool, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockGridFilterSaver struct{ mock.Mock }

func (m *MockGridFilterSaver) Handle(ctx context.Context, cmd commands.SaveGridFilterCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSource struct{ mock.Mock }

func (m *MockSource) Fetch(ctx context.Context, filters grid.Filters, language string) (grid.Page, error) {
	args := m.Called(ctx, filters, language)
	return args.Get(0).(grid.Page), args.Error(1)
}
