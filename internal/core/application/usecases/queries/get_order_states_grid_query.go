package queries

import (
	"errors"

	"backoffice/internal/core/application/grid"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrGetGridQueryIsNotConstructed = errors.New(
	"GetGridQuery must be created via NewGetGridQuery constructor",
)

// GetGridQuery asks for one page of a grid. Filters are expected to be normalized by the
// grid definition; names and templates are read in language.
type GetGridQuery struct {
	filters  grid.Filters
	language string
	guard    guard.ConstructorGuard
}

func NewGetGridQuery(filters grid.Filters, language string) (GetGridQuery, error) {
	if language == "" {
		return GetGridQuery{}, errs.NewValueIsRequiredError("language")
	}
	return GetGridQuery{filters: filters, language: language, guard: guard.NewConstructorGuard()}, nil
}

func (q GetGridQuery) Validate() error {
	return q.guard.Validate(ErrGetGridQueryIsNotConstructed)
}

func (q GetGridQuery) Filters() grid.Filters {
	return q.filters
}

func (q GetGridQuery) Language() string {
	return q.language
}
