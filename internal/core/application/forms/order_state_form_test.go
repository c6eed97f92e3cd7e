package forms_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"backoffice/internal/core/application/forms"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func languages(t *testing.T) forms.Languages {
	t.Helper()
	all, err := kernel.ParseLanguages("en:English,fr:Français")
	require.NoError(t, err)
	return forms.Languages{All: all, Default: all[0]}
}

func validOrderStateValues() url.Values {
	return url.Values{
		"name[en]":     {"Shipped"},
		"name[fr]":     {" Expédié "},
		"template[en]": {"shipped"},
		"template[fr]": {""},
		"color":        {"#8A2BE2"},
		"flags":        {"delivery", "shipped", "send_email"},
	}
}

func TestOrderStateForm_Submit(t *testing.T) {
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	form.Submit(validOrderStateValues())

	assert.True(t, form.Submitted)
	assert.True(t, form.IsValid())
	assert.Equal(t, map[string]string{"en": "Shipped", "fr": "Expédié"}, form.Data.Names)
	assert.Equal(t, "#8A2BE2", form.Data.Color)
	assert.Equal(t, orderstate.NewFlags(orderstate.Delivery, orderstate.Shipped, orderstate.SendEmail), form.Data.Flags)
	assert.True(t, form.Checked("delivery"))
	assert.False(t, form.Checked("invoice"))
}

func TestOrderStateForm_Submit_FieldErrors(t *testing.T) {
	values := validOrderStateValues()
	values.Set("name[en]", strings.Repeat("é", 65))
	values.Set("name[fr]", strings.Repeat("é", 65))
	values.Set("color", "purple")
	values.Set("template[fr]", "../etc/passwd")
	values["flags"] = []string{"delivery", "teleport"}
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	form.Submit(values)

	assert.False(t, form.IsValid())
	assert.Equal(t, forms.Errors{
		"name[en]":     forms.ErrValueTooLong,
		"color":        forms.ErrColorInvalid,
		"template[fr]": forms.ErrValueInvalid,
		"flags":        forms.ErrValueInvalid,
	}, form.Errors)
}

func TestOrderStateForm_MissingRequiredFieldsAreLeftToTheDomain(t *testing.T) {
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	form.Submit(url.Values{})

	assert.True(t, form.IsValid())
}

func TestOrderStateForm_Submit_TemplateTooLong(t *testing.T) {
	values := validOrderStateValues()
	values.Set("template[en]", strings.Repeat("a", orderstate.TemplateNameMaxLength+1))
	values.Set("template[fr]", strings.Repeat("a", orderstate.TemplateNameMaxLength))
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	form.Submit(values)

	assert.False(t, form.IsValid())
	assert.Equal(t, forms.Errors{"template[en]": forms.ErrValueTooLong}, form.Errors)
}

func TestOrderStateFormBuilder_GetForm(t *testing.T) {
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	assert.False(t, form.Submitted)
	assert.Equal(t, forms.DefaultColor, form.Data.Color)
	assert.Empty(t, form.Data.Names)
	assert.Empty(t, form.Data.Flags.List())
}

func TestOrderStateFormBuilder_GetFormFor(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderStateForEditingQuery(id)
	require.NoError(t, err)
	reader := new(MockEditableOrderStateReader)
	reader.On("Handle", ctx, query).Return(queries.EditableOrderState{
		ID:        id,
		Names:     kernel.NewLocalizedString(map[string]string{"en": "Refunded"}),
		Templates: kernel.NewLocalizedString(map[string]string{"en": "refund"}),
		Color:     "#ec2e15",
		Flags:     orderstate.NewFlags(orderstate.Loggable),
	}, nil).Once()

	// Act
	form, err := forms.NewOrderStateFormBuilder(languages(t), reader).GetFormFor(ctx, id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Refunded", form.Data.Names["en"])
	assert.Equal(t, "refund", form.Data.Templates["en"])
	assert.Equal(t, "#ec2e15", form.Data.Color)
	assert.True(t, form.Checked("logable"))
	reader.AssertExpectations(t)
}

func TestOrderStateFormBuilder_GetFormFor_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	reader := new(MockEditableOrderStateReader)
	reader.On("Handle", mock.Anything, mock.Anything).
		Return(queries.EditableOrderState{}, orderstate.NewNotFoundError(id)).Once()

	_, err := forms.NewOrderStateFormBuilder(languages(t), reader).GetFormFor(t.Context(), id)

	require.ErrorIs(t, err, orderstate.ErrOrderStateNotFound)
}

func TestOrderStateFormHandler_Handle_CreatesState(t *testing.T) {
	// Arrange
	ctx := t.Context()
	newID := kernel.NewUUID()
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(validOrderStateValues())
	adder := new(MockOrderStateAdder)
	adder.On("Handle", ctx, mock.MatchedBy(func(cmd commands.AddOrderStateCommand) bool {
		return cmd.Names().Get("fr") == "Expédié" &&
			cmd.Color() == "#8A2BE2" &&
			cmd.Templates().Get("en") == "shipped" &&
			cmd.Flags().Has(orderstate.Delivery)
	})).Return(newID, nil).Once()

	// Act
	result, err := forms.NewOrderStateFormHandler(adder, nil).Handle(ctx, form)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.True(t, result.ID.IsEqual(newID))
	assert.False(t, result.ID.IsZero())
	adder.AssertExpectations(t)
}

func TestOrderStateFormHandler_Handle_NotSubmitted(t *testing.T) {
	adder := new(MockOrderStateAdder)
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()

	result, err := forms.NewOrderStateFormHandler(adder, nil).Handle(t.Context(), form)

	require.NoError(t, err)
	assert.False(t, result.Submitted)
	assert.False(t, result.Success())
	adder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOrderStateFormHandler_Handle_RequiresDefaultLanguageName(t *testing.T) {
	// Arrange
	adder := new(MockOrderStateAdder)
	values := validOrderStateValues()
	values.Set("name[en]", "")
	values.Set("name[fr]", "Expédié")
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(values)

	// Act
	result, err := forms.NewOrderStateFormHandler(adder, nil).Handle(t.Context(), form)

	// Assert
	var stateErr *orderstate.Error
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, orderstate.KindMissingRequiredFields, stateErr.Kind)
	assert.Equal(t, []string{"name"}, stateErr.MissingFields)
	assert.False(t, result.Success())
	assert.Equal(t, "Expédié", form.Data.Names["fr"])
	adder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOrderStateFormHandler_Handle_ReturnsDomainError(t *testing.T) {
	adder := new(MockOrderStateAdder)
	adder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, orderstate.NewDuplicateNameError("Shipped")).Once()
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(validOrderStateValues())

	result, err := forms.NewOrderStateFormHandler(adder, nil).Handle(t.Context(), form)

	require.ErrorIs(t, err, orderstate.ErrDuplicateOrderStateName)
	assert.False(t, result.Success())
	assert.Equal(t, "Shipped", form.Data.Names["en"])
}

func TestOrderStateFormHandler_HandleFor_InvalidFormDispatchesNothing(t *testing.T) {
	// Arrange
	editor := new(MockOrderStateEditor)
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	values := validOrderStateValues()
	values.Set("color", "not-a-color")
	form.Submit(values)

	// Act
	result, err := forms.NewOrderStateFormHandler(nil, editor).HandleFor(t.Context(), kernel.NewUUID(), form)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.False(t, result.Valid)
	assert.Equal(t, forms.ErrColorInvalid, form.Errors["color"])
	assert.Equal(t, "Shipped", form.Data.Names["en"])
	editor.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOrderStateFormHandler_HandleFor_SetsEveryField(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(validOrderStateValues())
	editor := new(MockOrderStateEditor)
	editor.On("Handle", ctx, mock.MatchedBy(func(cmd commands.EditOrderStateCommand) bool {
		color, hasColor := cmd.Color()
		names, hasNames := cmd.Names()
		_, hasTemplates := cmd.Templates()
		flags := cmd.Flags()
		return cmd.ID().IsEqual(id) &&
			hasColor && color == "#8A2BE2" &&
			hasNames && names.Get("en") == "Shipped" &&
			hasTemplates &&
			len(flags) == len(orderstate.AllFlags()) &&
			flags[orderstate.Delivery] && !flags[orderstate.Invoice] &&
			len(cmd.ExpectedFlags()) == 0
	})).Return(nil).Once()

	// Act
	result, err := forms.NewOrderStateFormHandler(nil, editor).HandleFor(ctx, id, form)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.True(t, result.ID.IsEqual(id))
	editor.AssertExpectations(t)
}

func TestOrderStateFormHandler_HandleFor_RequiresNameAndColor(t *testing.T) {
	editor := new(MockOrderStateEditor)
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(url.Values{"name[fr]": {"Expédié"}})

	_, err := forms.NewOrderStateFormHandler(nil, editor).HandleFor(t.Context(), kernel.NewUUID(), form)

	var stateErr *orderstate.Error
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, []string{"name", "color"}, stateErr.MissingFields)
	editor.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOrderStateFormHandler_HandleFor_PropagatesErrors(t *testing.T) {
	editor := new(MockOrderStateEditor)
	boom := errors.New("connection reset")
	editor.On("Handle", mock.Anything, mock.Anything).Return(boom).Once()
	form := forms.NewOrderStateFormBuilder(languages(t), nil).GetForm()
	form.Submit(validOrderStateValues())

	_, err := forms.NewOrderStateFormHandler(nil, editor).HandleFor(t.Context(), kernel.NewUUID(), form)

	require.ErrorIs(t, err, boom)
}
