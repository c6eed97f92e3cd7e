package commands_test

import (
	"context"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderStateRepository struct{ mock.Mock }

func (m *MockOrderStateRepository) Add(ctx context.Context, s *orderstate.OrderState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderStateRepository) Update(ctx context.Context, s *orderstate.OrderState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderStateRepository) Get(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error) {
	args := m.Called(ctx, id)
	state, _ := args.Get(0).(*orderstate.OrderState)
	return state, args.Error(1)
}

func (m *MockOrderStateRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error) {
	args := m.Called(ctx, id)
	state, _ := args.Get(0).(*orderstate.OrderState)
	return state, args.Error(1)
}

func (m *MockOrderStateRepository) FindDuplicateName(
	ctx context.Context,
	names kernel.LocalizedString,
	exclude kernel.UUID,
) (string, error) {
	args := m.Called(ctx, names, exclude)
	return args.String(0), args.Error(1)
}

type MockOrderStateUoW struct{ mock.Mock }

func (m *MockOrderStateUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderStateUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderStateUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderStateUoW) OrderStateRepository() ports.OrderStateRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderStateRepository)
}

type MockOrderStateUoWFactory struct{ mock.Mock }

func (m *MockOrderStateUoWFactory) Create() commands.OrderStateUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStateUoW)
}

type MockOrderReturnStateRepository struct{ mock.Mock }

func (m *MockOrderReturnStateRepository) Add(ctx context.Context, s *orderreturnstate.OrderReturnState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderReturnStateRepository) Update(ctx context.Context, s *orderreturnstate.OrderReturnState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderReturnStateRepository) Get(ctx context.Context, id kernel.UUID) (*orderreturnstate.OrderReturnState, error) {
	args := m.Called(ctx, id)
	state, _ := args.Get(0).(*orderreturnstate.OrderReturnState)
	return state, args.Error(1)
}

type MockOrderReturnStateUoW struct{ mock.Mock }

func (m *MockOrderReturnStateUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderReturnStateUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderReturnStateUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderReturnStateUoW) OrderReturnStateRepository() ports.OrderReturnStateRepository {
	return m.Called().Get(0).(ports.OrderReturnStateRepository)
}

type MockOrderReturnStateUoWFactory struct{ mock.Mock }

func (m *MockOrderReturnStateUoWFactory) Create() commands.OrderReturnStateUoW {
	return m.Called().Get(0).(commands.OrderReturnStateUoW)
}

type MockGridFilterRepository struct{ mock.Mock }

func (m *MockGridFilterRepository) Save(ctx context.Context, filter ports.GridFilter) error {
	return m.Called(ctx, filter).Error(0)
}

func (m *MockGridFilterRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockGridFilterUoW struct{ mock.Mock }

func (m *MockGridFilterUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGridFilterUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGridFilterUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGridFilterUoW) GridFilterRepository() ports.GridFilterRepository {
	return m.Called().Get(0).(ports.GridFilterRepository)
}

type MockGridFilterUoWFactory struct{ mock.Mock }

func (m *MockGridFilterUoWFactory) Create() commands.GridFilterUoW {
	return m.Called().Get(0).(commands.GridFilterUoW)
}
