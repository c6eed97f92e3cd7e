package http

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/core/domain/model/orderstate"
)

// Messages shown to employees.
const (
	MsgOrderStateNotFound       = "This order status does not exist."
	MsgOrderReturnStateNotFound = "This order return status does not exist."
	MsgDuplicateName            = "An order status with the same name already exists: %s"
	MsgInvalidName              = `The "Name" field is invalid.`
	MsgRequiredFields           = "The %s field is required."
	MsgConcurrentModification   = "This order status was changed by someone else in the meantime. Please try again."
	MsgUnexpected               = "An unexpected error occurred. [%s code %d]"

	MsgCreated       = "Successful creation."
	MsgUpdated       = "Successful update."
	MsgStatusToggled = "The status has been successfully updated."
	MsgNoEditAccess  = "You do not have permission to edit this."
	MsgNoAccess      = "You do not have permission to access this."
)

// TranslateError returns the employee-facing message of a domain error. ok is false for
// any other error, which callers hand to the framework error handler.
func TranslateError(err error) (message string, ok bool) {
	var stateErr *orderstate.Error
	if errors.As(err, &stateErr) {
		return translateOrderStateError(stateErr), true
	}

	var returnStateErr *orderreturnstate.Error
	if errors.As(err, &returnStateErr) {
		return translateOrderReturnStateError(returnStateErr), true
	}

	return "", false
}

func translateOrderStateError(err *orderstate.Error) string {
	switch err.Kind {
	case orderstate.KindNotFound:
		return MsgOrderStateNotFound
	case orderstate.KindDuplicateName:
		return fmt.Sprintf(MsgDuplicateName, err.Name)
	case orderstate.KindConstraintViolation:
		switch err.Constraint { //nolint:exhaustive // other codes have no dedicated message
		case orderstate.InvalidName:
			return MsgInvalidName
		}
	case orderstate.KindMissingRequiredFields:
		return fmt.Sprintf(MsgRequiredFields, strings.Join(err.MissingFields, ","))
	case orderstate.KindConcurrentModification:
		return MsgConcurrentModification
	case orderstate.KindUnknown:
	}
	return fmt.Sprintf(MsgUnexpected, err.Kind, err.Code())
}

func translateOrderReturnStateError(err *orderreturnstate.Error) string {
	switch err.Kind {
	case orderreturnstate.KindNotFound:
		return MsgOrderReturnStateNotFound
	case orderreturnstate.KindConstraintViolation:
		switch err.Constraint { //nolint:exhaustive // other codes have no dedicated message
		case orderreturnstate.InvalidName:
			return MsgInvalidName
		}
	case orderreturnstate.KindMissingRequiredFields:
		return fmt.Sprintf(MsgRequiredFields, strings.Join(err.MissingFields, ","))
	case orderreturnstate.KindUnknown:
	}
	return fmt.Sprintf(MsgUnexpected, err.Kind, err.Code())
}
