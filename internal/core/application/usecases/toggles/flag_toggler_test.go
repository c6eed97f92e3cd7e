package toggles_test

import (
	"context"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/application/usecases/toggles"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStateReader struct{ mock.Mock }

func (m *MockOrderStateReader) Handle(
	ctx context.Context,
	query queries.GetOrderStateForEditingQuery,
) (queries.EditableOrderState, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.EditableOrderState), args.Error(1)
}

type MockOrderStateEditor struct{ mock.Mock }

func (m *MockOrderStateEditor) Handle(ctx context.Context, cmd commands.EditOrderStateCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

// memoryStore serves both sides of a toggle from one in-memory state.
type memoryStore struct {
	state queries.EditableOrderState
	edits []commands.EditOrderStateCommand
}

func (s *memoryStore) read() toggles.OrderStateReader { return storeReader{s} }
func (s *memoryStore) edit() toggles.OrderStateEditor { return storeEditor{s} }

type storeReader struct{ s *memoryStore }

func (r storeReader) Handle(_ context.Context, query queries.GetOrderStateForEditingQuery) (queries.EditableOrderState, error) {
	if !query.ID().IsEqual(r.s.state.ID) {
		return queries.EditableOrderState{}, orderstate.NewNotFoundError(query.ID())
	}
	return r.s.state, nil
}

type storeEditor struct{ s *memoryStore }

func (e storeEditor) Handle(_ context.Context, cmd commands.EditOrderStateCommand) error {
	for flag, expected := range cmd.ExpectedFlags() {
		if e.s.state.Flags.Has(flag) != expected {
			return orderstate.NewConcurrentModificationError(cmd.ID(), flag)
		}
	}
	for flag, on := range cmd.Flags() {
		e.s.state.Flags = e.s.state.Flags.With(flag, on)
	}
	e.s.edits = append(e.s.edits, cmd)
	return nil
}

func TestFlagToggler_Toggle_IssuesSingleFieldEdit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderStateForEditingQuery(id)
	require.NoError(t, err)
	reader := new(MockOrderStateReader)
	editor := new(MockOrderStateEditor)
	mock.InOrder(
		reader.On("Handle", ctx, query).Return(queries.EditableOrderState{
			ID:    id,
			Flags: orderstate.NewFlags(orderstate.Invoice),
		}, nil).Once(),
		editor.On("Handle", ctx, mock.MatchedBy(func(cmd commands.EditOrderStateCommand) bool {
			_, hasNames := cmd.Names()
			_, hasColor := cmd.Color()
			_, hasTemplates := cmd.Templates()
			return cmd.ID().IsEqual(id) &&
				assert.ObjectsAreEqual(map[orderstate.Flag]bool{orderstate.Delivery: true}, cmd.Flags()) &&
				assert.ObjectsAreEqual(map[orderstate.Flag]bool{orderstate.Delivery: false}, cmd.ExpectedFlags()) &&
				!hasNames && !hasColor && !hasTemplates
		})).Return(nil).Once(),
	)

	// Act
	value, err := toggles.NewFlagToggler(reader, editor).Toggle(ctx, id, orderstate.Delivery)

	// Assert
	require.NoError(t, err)
	assert.True(t, value)
	reader.AssertExpectations(t)
	editor.AssertExpectations(t)
}

func TestFlagToggler_Toggle_TwiceRestoresValue(t *testing.T) {
	for _, flag := range []orderstate.Flag{orderstate.Delivery, orderstate.Invoice, orderstate.SendEmail} {
		t.Run(flag.String(), func(t *testing.T) {
			ctx := t.Context()
			original := orderstate.NewFlags(orderstate.Paid, orderstate.Invoice)
			store := &memoryStore{state: queries.EditableOrderState{ID: kernel.NewUUID(), Flags: original}}
			toggler := toggles.NewFlagToggler(store.read(), store.edit())

			first, err := toggler.Toggle(ctx, store.state.ID, flag)
			require.NoError(t, err)
			assert.Equal(t, !original.Has(flag), first)

			second, err := toggler.Toggle(ctx, store.state.ID, flag)
			require.NoError(t, err)
			assert.Equal(t, original.Has(flag), second)

			assert.Equal(t, original, store.state.Flags)
			assert.Len(t, store.edits, 2)
		})
	}
}

func TestFlagToggler_Toggle_NotFound(t *testing.T) {
	store := &memoryStore{state: queries.EditableOrderState{ID: kernel.NewUUID()}}

	_, err := toggles.NewFlagToggler(store.read(), store.edit()).Toggle(t.Context(), kernel.NewUUID(), orderstate.Invoice)

	require.ErrorIs(t, err, orderstate.ErrOrderStateNotFound)
	assert.Empty(t, store.edits)
}

func TestFlagToggler_Toggle_ConcurrentChangeIsRejected(t *testing.T) {
	id := kernel.NewUUID()
	reader := new(MockOrderStateReader)
	reader.On("Handle", mock.Anything, mock.Anything).
		Return(queries.EditableOrderState{ID: id}, nil).Once()
	editor := new(MockOrderStateEditor)
	editor.On("Handle", mock.Anything, mock.Anything).
		Return(orderstate.NewConcurrentModificationError(id, orderstate.SendEmail)).Once()

	_, err := toggles.NewFlagToggler(reader, editor).Toggle(t.Context(), id, orderstate.SendEmail)

	require.ErrorIs(t, err, orderstate.ErrOrderStateConcurrentModification)
}

func TestFlagToggler_Toggle_RejectsOtherFlagsBeforeReading(t *testing.T) {
	reader := new(MockOrderStateReader)
	editor := new(MockOrderStateEditor)

	_, err := toggles.NewFlagToggler(reader, editor).Toggle(t.Context(), kernel.NewUUID(), orderstate.Paid)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	reader.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	editor.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
