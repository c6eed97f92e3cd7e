package orderreturnstate

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindConstraintViolation
	KindMissingRequiredFields
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "OrderReturnStateNotFound"
	case KindConstraintViolation:
		return "OrderReturnStateConstraint"
	case KindMissingRequiredFields:
		return "MissingOrderReturnStateRequiredFields"
	case KindUnknown:
	}
	return "OrderReturnStateUnknown"
}

type ConstraintCode int

const (
	ConstraintUnknown ConstraintCode = iota
	InvalidName
	InvalidColor
)

var (
	ErrOrderReturnStateNotFound              = errors.New("order return state not found")
	ErrOrderReturnStateConstraint            = errors.New("order return state constraint violated")
	ErrMissingOrderReturnStateRequiredFields = errors.New("order return state required fields are missing")
	ErrOrderReturnStateUnknown               = errors.New("order return state error")
)

// Error is returned by order return state use cases for user-facing failures.
type Error struct {
	Kind          ErrorKind
	ID            kernel.UUID
	Constraint    ConstraintCode
	MissingFields []string
}

func NewNotFoundError(id kernel.UUID) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

func NewConstraintError(code ConstraintCode) *Error {
	return &Error{Kind: KindConstraintViolation, Constraint: code}
}

func NewMissingRequiredFieldsError(fields ...string) *Error {
	return &Error{Kind: KindMissingRequiredFields, MissingFields: fields}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %s", ErrOrderReturnStateNotFound, e.ID)
	case KindConstraintViolation:
		return fmt.Sprintf("%s: code %d", ErrOrderReturnStateConstraint, e.Constraint)
	case KindMissingRequiredFields:
		return fmt.Sprintf("%s: %s", ErrMissingOrderReturnStateRequiredFields, strings.Join(e.MissingFields, ","))
	case KindUnknown:
	}
	return ErrOrderReturnStateUnknown.Error()
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrOrderReturnStateNotFound
	case KindConstraintViolation:
		return ErrOrderReturnStateConstraint
	case KindMissingRequiredFields:
		return ErrMissingOrderReturnStateRequiredFields
	case KindUnknown:
	}
	return ErrOrderReturnStateUnknown
}

func (e *Error) Code() int {
	if e.Kind == KindConstraintViolation {
		return int(e.Constraint)
	}
	return 0
}
