package commands

import (
	"errors"
	"maps"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrEditOrderStateCommandIsNotConstructed = errors.New(
		"EditOrderStateCommand must be created via NewEditOrderStateCommand constructor",
	)
	ErrNothingToEdit = errors.New("edit command changes nothing")
)

// EditOrderStateOption sets one field of an EditOrderStateCommand.
type EditOrderStateOption func(*EditOrderStateCommand) error

// EditOrderStateCommand changes only the fields it carries. Expected flags are
// preconditions: the edit is rejected with KindConcurrentModification when the stored
// value differs.
//
// Example (the delivery toggle):
//
//	cmd, err := NewEditOrderStateCommand(id,
//	    WithFlag(orderstate.Delivery, true),
//	    WithExpectedFlag(orderstate.Delivery, false),
//	)
type EditOrderStateCommand struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	names     *kernel.LocalizedString
	color     *string
	templates *kernel.LocalizedString
	flags     map[orderstate.Flag]bool
	expected  map[orderstate.Flag]bool

	guard guard.ConstructorGuard
}

func NewEditOrderStateCommand(id kernel.UUID, options ...EditOrderStateOption) (EditOrderStateCommand, error) {
	cmd := EditOrderStateCommand{
		flags:    make(map[orderstate.Flag]bool),
		expected: make(map[orderstate.Flag]bool),
		guard:    guard.NewConstructorGuard(),
	}

	errList := []error{cmd.setID(id)}
	for _, option := range options {
		errList = append(errList, option(&cmd))
	}
	if err := errors.Join(errList...); err != nil {
		return EditOrderStateCommand{}, err
	}

	if cmd.names == nil && cmd.color == nil && cmd.templates == nil && len(cmd.flags) == 0 {
		return EditOrderStateCommand{}, ErrNothingToEdit
	}

	return cmd, nil
}

func WithNames(names kernel.LocalizedString) EditOrderStateOption {
	return func(c *EditOrderStateCommand) error {
		c.names = &names
		return nil
	}
}

func WithColor(color string) EditOrderStateOption {
	return func(c *EditOrderStateCommand) error {
		c.color = &color
		return nil
	}
}

func WithTemplates(templates kernel.LocalizedString) EditOrderStateOption {
	return func(c *EditOrderStateCommand) error {
		if err := validateTemplates(templates); err != nil {
			return err
		}
		c.templates = &templates
		return nil
	}
}

func WithFlag(flag orderstate.Flag, on bool) EditOrderStateOption {
	return func(c *EditOrderStateCommand) error {
		if err := flag.Validate(); err != nil {
			return err
		}
		c.flags[flag] = on
		return nil
	}
}

// WithExpectedFlag requires the stored flag to equal value when the command is handled.
func WithExpectedFlag(flag orderstate.Flag, value bool) EditOrderStateOption {
	return func(c *EditOrderStateCommand) error {
		if err := flag.Validate(); err != nil {
			return err
		}
		c.expected[flag] = value
		return nil
	}
}

func (c EditOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderStateCommandIsNotConstructed)
}

func (c EditOrderStateCommand) ID() kernel.UUID {
	return c.id
}

func (c EditOrderStateCommand) Names() (kernel.LocalizedString, bool) {
	if c.names == nil {
		return kernel.LocalizedString{}, false
	}
	return *c.names, true
}

func (c EditOrderStateCommand) Color() (string, bool) {
	if c.color == nil {
		return "", false
	}
	return *c.color, true
}

func (c EditOrderStateCommand) Templates() (kernel.LocalizedString, bool) {
	if c.templates == nil {
		return kernel.LocalizedString{}, false
	}
	return *c.templates, true
}

// Flags returns the flags to set, keyed by flag.
func (c EditOrderStateCommand) Flags() map[orderstate.Flag]bool {
	return maps.Clone(c.flags)
}

func (c EditOrderStateCommand) ExpectedFlags() map[orderstate.Flag]bool {
	return maps.Clone(c.expected)
}

func (c *EditOrderStateCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderStateId", err)
	}

	c.id = id
	return nil
}
