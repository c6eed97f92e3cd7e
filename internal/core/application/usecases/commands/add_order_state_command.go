package commands

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrAddOrderStateCommandIsNotConstructed = errors.New(
	"AddOrderStateCommand must be created via NewAddOrderStateCommand constructor",
)

// AddOrderStateCommand creates an order state. Required fields and name format are left
// to the aggregate so that they surface as orderstate.Error values.
//
// Example:
//
//	cmd, err := NewAddOrderStateCommand(
//	    kernel.NewLocalizedString(map[string]string{"en": "Shipped"}),
//	    "#8A2BE2",
//	    kernel.NewLocalizedString(map[string]string{"en": "shipped"}),
//	    orderstate.NewFlags(orderstate.Shipped, orderstate.SendEmail),
//	)
//	id, err := handler.Handle(ctx, cmd)
type AddOrderStateCommand struct { //nolint:recvcheck //using for validation
	names     kernel.LocalizedString
	color     string
	templates kernel.LocalizedString
	flags     orderstate.Flags

	guard guard.ConstructorGuard
}

func NewAddOrderStateCommand(
	names kernel.LocalizedString,
	color string,
	templates kernel.LocalizedString,
	flags orderstate.Flags,
) (AddOrderStateCommand, error) {
	cmd := AddOrderStateCommand{
		names: names,
		color: color,
		flags: flags,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTemplates(templates); err != nil {
		return AddOrderStateCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderStateCommandIsNotConstructed)
}

func (c AddOrderStateCommand) Names() kernel.LocalizedString {
	return c.names
}

func (c AddOrderStateCommand) Color() string {
	return c.color
}

func (c AddOrderStateCommand) Templates() kernel.LocalizedString {
	return c.templates
}

func (c AddOrderStateCommand) Flags() orderstate.Flags {
	return c.flags
}

func (c *AddOrderStateCommand) setTemplates(templates kernel.LocalizedString) error {
	if err := validateTemplates(templates); err != nil {
		return err
	}

	c.templates = templates
	return nil
}

func validateTemplates(templates kernel.LocalizedString) error {
	for _, iso := range templates.IsoCodes() {
		name := templates.Get(iso)
		if len(name) > orderstate.TemplateNameMaxLength {
			return errs.NewValueIsOutOfRangeError("template length", len(name), 0, orderstate.TemplateNameMaxLength)
		}
		if !orderstate.IsTemplateName(name) {
			return errs.NewValueIsInvalidErrorWithCause("template", fmt.Errorf("%q is not a template name", name))
		}
	}
	return nil
}
