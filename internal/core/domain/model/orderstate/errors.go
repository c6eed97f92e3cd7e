package orderstate

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

// ErrorKind enumerates the order state failures reported back to back-office users.
// Presentation code switches over it exhaustively; adding a kind means adding a message.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindDuplicateName
	KindConstraintViolation
	KindMissingRequiredFields
	KindConcurrentModification
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "OrderStateNotFound"
	case KindDuplicateName:
		return "DuplicateOrderStateName"
	case KindConstraintViolation:
		return "OrderStateConstraint"
	case KindMissingRequiredFields:
		return "MissingOrderStateRequiredFields"
	case KindConcurrentModification:
		return "OrderStateConcurrentModification"
	case KindUnknown:
	}
	return "OrderStateUnknown"
}

// ConstraintCode sub-classifies KindConstraintViolation.
type ConstraintCode int

const (
	ConstraintUnknown ConstraintCode = iota
	InvalidName
	InvalidColor
)

var (
	ErrOrderStateNotFound               = errors.New("order state not found")
	ErrDuplicateOrderStateName          = errors.New("order state name already exists")
	ErrOrderStateConstraint             = errors.New("order state constraint violated")
	ErrMissingOrderStateRequiredFields  = errors.New("order state required fields are missing")
	ErrOrderStateConcurrentModification = errors.New("order state was modified concurrently")
	ErrOrderStateUnknown                = errors.New("order state error")
)

// Error is the single error type returned by order state use cases for failures that
// must be shown to the user. Only the fields relevant to Kind are set.
type Error struct {
	Kind          ErrorKind
	ID            kernel.UUID
	Name          string
	Constraint    ConstraintCode
	MissingFields []string
	Flag          Flag
}

func NewNotFoundError(id kernel.UUID) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

func NewDuplicateNameError(name string) *Error {
	return &Error{Kind: KindDuplicateName, Name: name}
}

func NewConstraintError(code ConstraintCode) *Error {
	return &Error{Kind: KindConstraintViolation, Constraint: code}
}

func NewMissingRequiredFieldsError(fields ...string) *Error {
	return &Error{Kind: KindMissingRequiredFields, MissingFields: fields}
}

func NewConcurrentModificationError(id kernel.UUID, flag Flag) *Error {
	return &Error{Kind: KindConcurrentModification, ID: id, Flag: flag}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %s", ErrOrderStateNotFound, e.ID)
	case KindDuplicateName:
		return fmt.Sprintf("%s: %s", ErrDuplicateOrderStateName, e.Name)
	case KindConstraintViolation:
		return fmt.Sprintf("%s: code %d", ErrOrderStateConstraint, e.Constraint)
	case KindMissingRequiredFields:
		return fmt.Sprintf("%s: %s", ErrMissingOrderStateRequiredFields, strings.Join(e.MissingFields, ","))
	case KindConcurrentModification:
		return fmt.Sprintf("%s: %s (%s)", ErrOrderStateConcurrentModification, e.ID, e.Flag)
	case KindUnknown:
	}
	return ErrOrderStateUnknown.Error()
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrOrderStateNotFound
	case KindDuplicateName:
		return ErrDuplicateOrderStateName
	case KindConstraintViolation:
		return ErrOrderStateConstraint
	case KindMissingRequiredFields:
		return ErrMissingOrderStateRequiredFields
	case KindConcurrentModification:
		return ErrOrderStateConcurrentModification
	case KindUnknown:
	}
	return ErrOrderStateUnknown
}

// Code is the numeric detail shown in fallback messages.
func (e *Error) Code() int {
	if e.Kind == KindConstraintViolation {
		return int(e.Constraint)
	}
	return 0
}
