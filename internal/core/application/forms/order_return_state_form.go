package forms

import (
	"context"
	"net/url"
	"strings"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
)

type OrderReturnStateData struct {
	Names map[string]string
	Color string
}

type OrderReturnStateForm struct {
	Data      OrderReturnStateData
	Errors    Errors
	Submitted bool
	Languages Languages
}

func (f *OrderReturnStateForm) Submit(values url.Values) {
	f.Submitted = true
	f.Errors = Errors{}
	f.Data = OrderReturnStateData{
		Names: f.Languages.readLocalized(values, "name"),
		Color: strings.TrimSpace(values.Get("color")),
	}

	f.Languages.validateDefaultName(f.Data.Names, f.Errors)
	validateColor(f.Data.Color, f.Errors)
}

func (f *OrderReturnStateForm) IsValid() bool {
	return len(f.Errors) == 0
}

type (
	EditableOrderReturnStateReader interface {
		Handle(ctx context.Context, query queries.GetOrderReturnStateForEditingQuery) (queries.EditableOrderReturnState, error)
	}

	OrderReturnStateAdder interface {
		Handle(ctx context.Context, cmd commands.AddOrderReturnStateCommand) (kernel.UUID, error)
	}

	OrderReturnStateEditor interface {
		Handle(ctx context.Context, cmd commands.EditOrderReturnStateCommand) error
	}
)

type OrderReturnStateFormBuilder struct {
	languages Languages
	reader    EditableOrderReturnStateReader
}

func NewOrderReturnStateFormBuilder(languages Languages, reader EditableOrderReturnStateReader) *OrderReturnStateFormBuilder {
	return &OrderReturnStateFormBuilder{languages: languages, reader: reader}
}

func (b *OrderReturnStateFormBuilder) GetForm() *OrderReturnStateForm {
	return &OrderReturnStateForm{
		Data:      OrderReturnStateData{Names: map[string]string{}, Color: DefaultColor},
		Errors:    Errors{},
		Languages: b.languages,
	}
}

func (b *OrderReturnStateFormBuilder) GetFormFor(ctx context.Context, id kernel.UUID) (*OrderReturnStateForm, error) {
	query, err := queries.NewGetOrderReturnStateForEditingQuery(id)
	if err != nil {
		return nil, err
	}
	state, err := b.reader.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return &OrderReturnStateForm{
		Data:      OrderReturnStateData{Names: state.Names.Values(), Color: state.Color},
		Errors:    Errors{},
		Languages: b.languages,
	}, nil
}

type OrderReturnStateFormHandler struct {
	adder  OrderReturnStateAdder
	editor OrderReturnStateEditor
}

func NewOrderReturnStateFormHandler(adder OrderReturnStateAdder, editor OrderReturnStateEditor) *OrderReturnStateFormHandler {
	return &OrderReturnStateFormHandler{adder: adder, editor: editor}
}

func (h *OrderReturnStateFormHandler) Handle(ctx context.Context, form *OrderReturnStateForm) (Result, error) {
	result := Result{Submitted: form.Submitted, Valid: form.IsValid()}
	if !result.Success() {
		return result, nil
	}
	if missing := form.Languages.missingFields(form.Data.Names, form.Data.Color); len(missing) > 0 {
		return Result{}, orderreturnstate.NewMissingRequiredFieldsError(missing...)
	}

	cmd, err := commands.NewAddOrderReturnStateCommand(kernel.NewLocalizedString(form.Data.Names), form.Data.Color)
	if err != nil {
		return Result{}, err
	}
	id, err := h.adder.Handle(ctx, cmd)
	if err != nil {
		return Result{}, err
	}
	result.ID = id
	return result, nil
}

func (h *OrderReturnStateFormHandler) HandleFor(ctx context.Context, id kernel.UUID, form *OrderReturnStateForm) (Result, error) {
	result := Result{Submitted: form.Submitted, Valid: form.IsValid()}
	if !result.Success() {
		return result, nil
	}
	if missing := form.Languages.missingFields(form.Data.Names, form.Data.Color); len(missing) > 0 {
		return Result{}, orderreturnstate.NewMissingRequiredFieldsError(missing...)
	}

	cmd, err := commands.NewEditOrderReturnStateCommand(id, kernel.NewLocalizedString(form.Data.Names), form.Data.Color)
	if err != nil {
		return Result{}, err
	}
	if err = h.editor.Handle(ctx, cmd); err != nil {
		return Result{}, err
	}
	result.ID = id
	return result, nil
}
