package orderreturnstate

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

var ErrOrderReturnStateIsNotConstructed = errors.New("OrderReturnState must be created via NewOrderReturnState or RestoreOrderReturnState")

// OrderReturnState is the status of a merchandise return (waiting for package, refunded, ...).
type OrderReturnState struct {
	id    kernel.UUID
	names kernel.LocalizedString
	color kernel.Color

	isConstructed bool
}

// NewOrderReturnState reports missing name and color together, then checks their format.
func NewOrderReturnState(id kernel.UUID, names kernel.LocalizedString, color string) (*OrderReturnState, error) {
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

	s := &OrderReturnState{id: id, isConstructed: true}
	if err := errors.Join(s.Rename(names), s.ChangeColor(color)); err != nil {
		return nil, err
	}
	return s, nil
}

func RestoreOrderReturnState(id kernel.UUID, names kernel.LocalizedString, color kernel.Color) (*OrderReturnState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &OrderReturnState{id: id, names: names, color: color, isConstructed: true}, nil
}

func (s *OrderReturnState) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOrderReturnStateIsNotConstructed
	}
	return nil
}

func (s *OrderReturnState) ID() kernel.UUID {
	return s.id
}

func (s *OrderReturnState) Names() kernel.LocalizedString {
	return s.names
}

func (s *OrderReturnState) Name(isoCode string) string {
	return s.names.Get(isoCode)
}

func (s *OrderReturnState) Color() kernel.Color {
	return s.color
}

func (s *OrderReturnState) Rename(names kernel.LocalizedString) error {
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

func (s *OrderReturnState) ChangeColor(hex string) error {
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
