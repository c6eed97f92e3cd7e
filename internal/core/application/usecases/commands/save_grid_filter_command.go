package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrSaveGridFilterCommandIsNotConstructed = errors.New(
	"SaveGridFilterCommand must be created via NewSaveGridFilterCommand constructor",
)

// SaveGridFilterCommand remembers the filter state an employee last applied to a grid.
type SaveGridFilterCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	gridID     string
	filters    string

	guard guard.ConstructorGuard
}

// NewSaveGridFilterCommand takes the filters as an encoded grid query string.
func NewSaveGridFilterCommand(employeeID kernel.UUID, gridID, filters string) (SaveGridFilterCommand, error) {
	cmd := SaveGridFilterCommand{
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setGridID(gridID),
	); err != nil {
		return SaveGridFilterCommand{}, err
	}

	return cmd, nil
}

func (c SaveGridFilterCommand) Validate() error {
	return c.guard.Validate(ErrSaveGridFilterCommandIsNotConstructed)
}

func (c SaveGridFilterCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c SaveGridFilterCommand) GridID() string {
	return c.gridID
}

func (c SaveGridFilterCommand) Filters() string {
	return c.filters
}

func (c *SaveGridFilterCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}

	c.employeeID = employeeID
	return nil
}

func (c *SaveGridFilterCommand) setGridID(gridID string) error {
	if gridID == "" {
		return errs.NewValueIsRequiredError("gridId")
	}

	c.gridID = gridID
	return nil
}
