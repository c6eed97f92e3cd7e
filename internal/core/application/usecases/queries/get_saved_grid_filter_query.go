package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrGetSavedGridFilterQueryIsNotConstructed = errors.New(
	"GetSavedGridFilterQuery must be created via NewGetSavedGridFilterQuery constructor",
)

// GetSavedGridFilterQuery reads the last filter an employee applied to a grid.
type GetSavedGridFilterQuery struct {
	employeeID kernel.UUID
	gridID     string
	guard      guard.ConstructorGuard
}

func NewGetSavedGridFilterQuery(employeeID kernel.UUID, gridID string) (GetSavedGridFilterQuery, error) {
	if employeeID.IsZero() {
		return GetSavedGridFilterQuery{}, errs.NewValueIsRequiredError("employeeId")
	}
	if gridID == "" {
		return GetSavedGridFilterQuery{}, errs.NewValueIsRequiredError("gridId")
	}
	return GetSavedGridFilterQuery{
		employeeID: employeeID,
		gridID:     gridID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetSavedGridFilterQuery) Validate() error {
	return q.guard.Validate(ErrGetSavedGridFilterQueryIsNotConstructed)
}

func (q GetSavedGridFilterQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}

func (q GetSavedGridFilterQuery) GridID() string {
	return q.gridID
}
