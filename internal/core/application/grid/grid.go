package grid

import (
	"context"
	"fmt"
)

// Row is one listed entity. Text holds text and color column values, Bool holds toggle
// column values, both keyed by column ID.
type Row struct {
	ID    string
	Color string
	Text  map[string]string
	Bool  map[string]bool
}

// Page is what a Source returns for a filter state.
type Page struct {
	Rows  []Row
	Total int
}

// Source loads the rows of one grid. language selects the translation of localized columns.
type Source interface {
	Fetch(ctx context.Context, filters Filters, language string) (Page, error)
}

// Grid is a rendered-ready grid: definition, applied filters and the current page.
type Grid struct {
	Definition Definition
	Filters    Filters
	Rows       []Row
	Total      int
}

// Factory builds the grid of one definition from its source.
type Factory struct {
	definition Definition
	source     Source
}

func NewFactory(definition Definition, source Source) *Factory {
	return &Factory{definition: definition, source: source}
}

func (f *Factory) Definition() Definition {
	return f.definition
}

// GetGrid normalizes filters against the definition before fetching.
func (f *Factory) GetGrid(ctx context.Context, filters Filters, language string) (Grid, error) {
	filters = f.definition.Normalize(filters)

	page, err := f.source.Fetch(ctx, filters, language)
	if err != nil {
		return Grid{}, fmt.Errorf("fetch %s grid: %w", f.definition.ID, err)
	}

	return Grid{
		Definition: f.definition,
		Filters:    filters,
		Rows:       page.Rows,
		Total:      page.Total,
	}, nil
}

// FilterName is the search form field of column.
func (g Grid) FilterName(column string) string {
	return key(g.Definition.ID, column)
}

// SortQuery is the query string that sorts by column, flipping the direction when the
// grid is already sorted by it.
func (g Grid) SortQuery(column string) string {
	return g.Filters.With(func(f *Filters) {
		order := SortAsc
		if f.OrderBy == column && f.SortOrder == SortAsc {
			order = SortDesc
		}
		f.OrderBy = column
		f.SortOrder = order
		f.Offset = 0
	}).Encode().Encode()
}

// IsSortedBy reports the direction when the grid is sorted by column.
func (g Grid) IsSortedBy(column string) (string, bool) {
	if g.Filters.OrderBy != column {
		return "", false
	}
	return g.Filters.SortOrder, true
}

// From and To are the 1-based positions of the first and last rows shown.
func (g Grid) From() int {
	if g.Total == 0 {
		return 0
	}
	return g.Filters.Offset + 1
}

func (g Grid) To() int {
	return g.Filters.Offset + len(g.Rows)
}

func (g Grid) HasPrevious() bool {
	return g.Filters.Offset > 0
}

func (g Grid) HasNext() bool {
	return g.Filters.Offset+g.Filters.Limit < g.Total
}

func (g Grid) PreviousQuery() string {
	return g.pageQuery(max(g.Filters.Offset-g.Filters.Limit, 0))
}

func (g Grid) NextQuery() string {
	return g.pageQuery(g.Filters.Offset + g.Filters.Limit)
}

// ResetQuery clears every filter value and keeps the sort.
func (g Grid) ResetQuery() string {
	return g.Filters.With(func(f *Filters) {
		f.Values = map[string]string{}
		f.Offset = 0
	}).Encode().Encode()
}

func (g Grid) pageQuery(offset int) string {
	return g.Filters.With(func(f *Filters) { f.Offset = offset }).Encode().Encode()
}
