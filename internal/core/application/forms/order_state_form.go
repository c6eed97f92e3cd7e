package forms

import (
	"context"
	"net/url"
	"strings"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
)

// OrderStateData holds the order state fields as the employee typed them.
type OrderStateData struct {
	Names     map[string]string
	Templates map[string]string
	Color     string
	Flags     orderstate.Flags
}

type OrderStateForm struct {
	Data      OrderStateData
	Errors    Errors
	Submitted bool
	Languages Languages
}

// Submit binds the posted values and validates them. Flags are the checked "flags"
// checkboxes, each carrying a flag name.
func (f *OrderStateForm) Submit(values url.Values) {
	f.Submitted = true
	f.Errors = Errors{}
	f.Data = OrderStateData{
		Names:     f.Languages.readLocalized(values, "name"),
		Templates: f.Languages.readLocalized(values, "template"),
		Color:     strings.TrimSpace(values.Get("color")),
	}

	for _, name := range values["flags"] {
		flag, err := orderstate.ParseFlag(name)
		if err != nil {
			f.Errors["flags"] = ErrValueInvalid
			continue
		}
		f.Data.Flags = f.Data.Flags.With(flag, true)
	}

	f.Languages.validateDefaultName(f.Data.Names, f.Errors)
	validateColor(f.Data.Color, f.Errors)
	for iso, template := range f.Data.Templates {
		switch {
		case len(template) > orderstate.TemplateNameMaxLength:
			f.Errors[FieldName("template", iso)] = ErrValueTooLong
		case !orderstate.IsTemplateName(template):
			f.Errors[FieldName("template", iso)] = ErrValueInvalid
		}
	}
}

func (f *OrderStateForm) IsValid() bool {
	return len(f.Errors) == 0
}

// Checked reports whether the flag checkbox is ticked, for the view.
func (f *OrderStateForm) Checked(name string) bool {
	flag, err := orderstate.ParseFlag(name)
	return err == nil && f.Data.Flags.Has(flag)
}

type (
	EditableOrderStateReader interface {
		Handle(ctx context.Context, query queries.GetOrderStateForEditingQuery) (queries.EditableOrderState, error)
	}

	OrderStateAdder interface {
		Handle(ctx context.Context, cmd commands.AddOrderStateCommand) (kernel.UUID, error)
	}

	OrderStateEditor interface {
		Handle(ctx context.Context, cmd commands.EditOrderStateCommand) error
	}
)

// OrderStateFormBuilder creates blank forms and forms filled from a stored state.
type OrderStateFormBuilder struct {
	languages Languages
	reader    EditableOrderStateReader
}

func NewOrderStateFormBuilder(languages Languages, reader EditableOrderStateReader) *OrderStateFormBuilder {
	return &OrderStateFormBuilder{languages: languages, reader: reader}
}

func (b *OrderStateFormBuilder) GetForm() *OrderStateForm {
	return &OrderStateForm{
		Data: OrderStateData{
			Names:     map[string]string{},
			Templates: map[string]string{},
			Color:     DefaultColor,
		},
		Errors:    Errors{},
		Languages: b.languages,
	}
}

// GetFormFor returns orderstate.ErrOrderStateNotFound when the state does not exist.
func (b *OrderStateFormBuilder) GetFormFor(ctx context.Context, id kernel.UUID) (*OrderStateForm, error) {
	query, err := queries.NewGetOrderStateForEditingQuery(id)
	if err != nil {
		return nil, err
	}
	state, err := b.reader.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return &OrderStateForm{
		Data: OrderStateData{
			Names:     state.Names.Values(),
			Templates: state.Templates.Values(),
			Color:     state.Color,
			Flags:     state.Flags,
		},
		Errors:    Errors{},
		Languages: b.languages,
	}, nil
}

// OrderStateFormHandler turns a valid form into an add or edit command.
type OrderStateFormHandler struct {
	adder  OrderStateAdder
	editor OrderStateEditor
}

func NewOrderStateFormHandler(adder OrderStateAdder, editor OrderStateEditor) *OrderStateFormHandler {
	return &OrderStateFormHandler{adder: adder, editor: editor}
}

// Handle creates a state from the form. Domain errors are returned as is.
func (h *OrderStateFormHandler) Handle(ctx context.Context, form *OrderStateForm) (Result, error) {
	result := Result{Submitted: form.Submitted, Valid: form.IsValid()}
	if !result.Success() {
		return result, nil
	}
	if missing := form.Languages.missingFields(form.Data.Names, form.Data.Color); len(missing) > 0 {
		return Result{}, orderstate.NewMissingRequiredFieldsError(missing...)
	}

	cmd, err := commands.NewAddOrderStateCommand(
		kernel.NewLocalizedString(form.Data.Names),
		form.Data.Color,
		kernel.NewLocalizedString(form.Data.Templates),
		form.Data.Flags,
	)
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

// HandleFor overwrites every field of state id with the form.
func (h *OrderStateFormHandler) HandleFor(ctx context.Context, id kernel.UUID, form *OrderStateForm) (Result, error) {
	result := Result{Submitted: form.Submitted, Valid: form.IsValid()}
	if !result.Success() {
		return result, nil
	}
	if missing := form.Languages.missingFields(form.Data.Names, form.Data.Color); len(missing) > 0 {
		return Result{}, orderstate.NewMissingRequiredFieldsError(missing...)
	}

	options := []commands.EditOrderStateOption{
		commands.WithNames(kernel.NewLocalizedString(form.Data.Names)),
		commands.WithColor(form.Data.Color),
		commands.WithTemplates(kernel.NewLocalizedString(form.Data.Templates)),
	}
	for _, flag := range orderstate.AllFlags() {
		options = append(options, commands.WithFlag(flag, form.Data.Flags.Has(flag)))
	}

	cmd, err := commands.NewEditOrderStateCommand(id, options...)
	if err != nil {
		return Result{}, err
	}
	if err = h.editor.Handle(ctx, cmd); err != nil {
		return Result{}, err
	}
	result.ID = id
	return result, nil
}
