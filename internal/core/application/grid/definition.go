// Package grid describes the filterable, sortable, paginated listings of the order
// statuses page: their columns, the filter state carried in URLs and the factory that
// turns a filter state into rows.
package grid

import (
	"net/url"
	"strings"
)

const (
	OrderStatesGridID       = "order_states"
	OrderReturnStatesGridID = "order_return_states"

	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultLimit = 50
)

// Limits are the page sizes an employee can pick.
var Limits = []int{10, 20, 50, 100, 300, 1000}

type ColumnType int

const (
	TextColumn ColumnType = iota
	// ColorColumn renders the value as a badge in the row color.
	ColorColumn
	// ToggleColumn renders a boolean that posts to ToggleAction when clicked.
	ToggleColumn
)

type FilterType int

const (
	NoFilter FilterType = iota
	TextFilter
	BoolFilter
)

type Column struct {
	ID           string
	Label        string
	Type         ColumnType
	Filter       FilterType
	Sortable     bool
	ToggleAction string
}

func (c Column) IsColor() bool       { return c.Type == ColorColumn }
func (c Column) IsToggle() bool      { return c.Type == ToggleColumn }
func (c Column) HasTextFilter() bool { return c.Filter == TextFilter }
func (c Column) HasBoolFilter() bool { return c.Filter == BoolFilter }

// Definition is the static shape of a grid.
type Definition struct {
	ID               string
	Title            string
	Columns          []Column
	DefaultOrderBy   string
	DefaultSortOrder string
}

// OrderStatesDefinition is the order states grid.
func OrderStatesDefinition() Definition {
	return Definition{
		ID:    OrderStatesGridID,
		Title: "Statuses",
		Columns: []Column{
			{ID: "name", Label: "Name", Type: ColorColumn, Filter: TextFilter, Sortable: true},
			{ID: "send_email", Label: "Send email to customer", Type: ToggleColumn, Filter: BoolFilter, Sortable: true, ToggleAction: "toggle-send-email"},
			{ID: "delivery", Label: "Delivery", Type: ToggleColumn, Filter: BoolFilter, Sortable: true, ToggleAction: "toggle-delivery"},
			{ID: "invoice", Label: "Invoice", Type: ToggleColumn, Filter: BoolFilter, Sortable: true, ToggleAction: "toggle-invoice"},
			{ID: "template", Label: "Email template", Type: TextColumn, Filter: TextFilter, Sortable: true},
		},
		DefaultOrderBy:   "name",
		DefaultSortOrder: SortAsc,
	}
}

// OrderReturnStatesDefinition is the merchandise return statuses grid.
func OrderReturnStatesDefinition() Definition {
	return Definition{
		ID:    OrderReturnStatesGridID,
		Title: "Merchandise return (RMA) statuses",
		Columns: []Column{
			{ID: "name", Label: "Name", Type: ColorColumn, Filter: TextFilter, Sortable: true},
		},
		DefaultOrderBy:   "name",
		DefaultSortOrder: SortAsc,
	}
}

// ResolveSearchDefinition picks the grid a search form was posted for. The return states
// grid is chosen only when the form explicitly carries its identifier, either as a bare key
// or as the prefix of a bracketed field name; any other form targets the order states grid.
func ResolveSearchDefinition(form url.Values) Definition {
	for key := range form {
		if key == OrderReturnStatesGridID || strings.HasPrefix(key, OrderReturnStatesGridID+"[") {
			return OrderReturnStatesDefinition()
		}
	}
	return OrderStatesDefinition()
}

func (d Definition) Column(id string) (Column, bool) {
	for _, c := range d.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// FilterableColumns returns the columns shown in the search row.
func (d Definition) FilterableColumns() []Column {
	var columns []Column
	for _, c := range d.Columns {
		if c.Filter != NoFilter {
			columns = append(columns, c)
		}
	}
	return columns
}

func (d Definition) DefaultFilters() Filters {
	return Filters{
		GridID:    d.ID,
		OrderBy:   d.DefaultOrderBy,
		SortOrder: d.DefaultSortOrder,
		Limit:     DefaultLimit,
		Values:    map[string]string{},
	}
}
