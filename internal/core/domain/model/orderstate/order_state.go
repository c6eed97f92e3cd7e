package orderstate

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

// ErrOrderStateIsNotConstructed is returned by Validate for an OrderState that was
// not built by NewOrderState or RestoreOrderState.
var ErrOrderStateIsNotConstructed = errors.New("OrderState must be created via NewOrderState or RestoreOrderState")

// OrderState is a configurable status an order moves through. It is the aggregate root
// for everything an employee can change on the order states page.
//
// Invariants:
//   - valid identifier
//   - at least one localized name, each passing kernel.IsGenericName
//   - hex color
//
// Name uniqueness among active states is checked by the command handlers.
type OrderState struct {
	id        kernel.UUID
	names     kernel.LocalizedString
	color     kernel.Color
	templates kernel.LocalizedString
	flags     Flags
	deleted   bool

	isConstructed bool
}

// NewOrderState validates and creates an active order state.
//
// Missing fields are reported together, name first:
//
//	_, err := orderstate.NewOrderState(id, kernel.NewLocalizedString(nil), "", tpl, 0)
//	// err is *Error{Kind: KindMissingRequiredFields, MissingFields: ["name", "color"]}
func NewOrderState(
	id kernel.UUID,
	names kernel.LocalizedString,
	color string,
	templates kernel.LocalizedString,
	flags Flags,
) (*OrderState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	color = strings.TrimSpace(color)
	var missing []string
	if names.IsEmpty() {
		missing = append(missing, "name")
	}
	if color == "" {
		missing = append(missing, "color")
	}
	if len(missing) > 0 {
		return nil, NewMissingRequiredFieldsError(missing...)
	}

	s := &OrderState{id: id, flags: flags, isConstructed: true}
	if err := s.Rename(names); err != nil {
		return nil, err
	}
	if err := s.ChangeColor(color); err != nil {
		return nil, err
	}
	s.ChangeTemplates(templates)

	return s, nil
}

// RestoreOrderState rebuilds an order state read from storage. Stored rows were validated
// when written, so only the identifier is checked.
func RestoreOrderState(
	id kernel.UUID,
	names kernel.LocalizedString,
	color kernel.Color,
	templates kernel.LocalizedString,
	flags Flags,
	deleted bool,
) (*OrderState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &OrderState{
		id:            id,
		names:         names,
		color:         color,
		templates:     templates,
		flags:         flags,
		deleted:       deleted,
		isConstructed: true,
	}, nil
}

func (s *OrderState) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOrderStateIsNotConstructed
	}
	return nil
}

func (s *OrderState) ID() kernel.UUID {
	return s.id
}

func (s *OrderState) Names() kernel.LocalizedString {
	return s.names
}

// Name returns the name in the given language, or "" when it is not translated.
func (s *OrderState) Name(isoCode string) string {
	return s.names.Get(isoCode)
}

func (s *OrderState) Color() kernel.Color {
	return s.color
}

func (s *OrderState) Templates() kernel.LocalizedString {
	return s.templates
}

func (s *OrderState) Flags() Flags {
	return s.flags
}

func (s *OrderState) Has(flag Flag) bool {
	return s.flags.Has(flag)
}

func (s *OrderState) IsDeleted() bool {
	return s.deleted
}

// Rename replaces all localized names.
func (s *OrderState) Rename(names kernel.LocalizedString) error {
	if names.IsEmpty() {
		return NewMissingRequiredFieldsError("name")
	}
	for _, iso := range names.IsoCodes() {
		if !kernel.IsGenericName(names.Get(iso)) {
			return NewConstraintError(InvalidName)
		}
	}
	s.names = names
	return nil
}

func (s *OrderState) ChangeColor(hex string) error {
	if strings.TrimSpace(hex) == "" {
		return NewMissingRequiredFieldsError("color")
	}
	color, err := kernel.NewColor(hex)
	if err != nil {
		return NewConstraintError(InvalidColor)
	}
	s.color = color
	return nil
}

// ChangeTemplates replaces the mail template of every language. Languages without a
// template send no e-mail even when SendEmail is on.
func (s *OrderState) ChangeTemplates(templates kernel.LocalizedString) {
	s.templates = templates
}

func (s *OrderState) SetFlag(flag Flag, on bool) error {
	if err := flag.Validate(); err != nil {
		return err
	}
	s.flags = s.flags.With(flag, on)
	return nil
}
