package grid

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Filters is the state of one grid: filter values, sort and page window.
//
// In URLs it is encoded under the grid identifier:
//
//	order_states[filters][name]=ship&order_states[orderBy]=name&order_states[sortOrder]=desc
//	order_states[offset]=50&order_states[limit]=50
type Filters struct {
	GridID    string
	OrderBy   string
	SortOrder string
	Offset    int
	Limit     int
	Values    map[string]string
}

func (f Filters) Value(column string) string {
	return f.Values[column]
}

// Encode returns the query parameters of f, omitting empty filter values.
func (f Filters) Encode() url.Values {
	q := url.Values{}
	for _, column := range slices.Sorted(maps.Keys(f.Values)) {
		if v := f.Values[column]; v != "" {
			q.Set(key(f.GridID, "filters", column), v)
		}
	}
	q.Set(key(f.GridID, "orderBy"), f.OrderBy)
	q.Set(key(f.GridID, "sortOrder"), f.SortOrder)
	q.Set(key(f.GridID, "offset"), strconv.Itoa(f.Offset))
	q.Set(key(f.GridID, "limit"), strconv.Itoa(f.Limit))
	return q
}

// With returns a copy of f with change applied to it.
func (f Filters) With(change func(*Filters)) Filters {
	f.Values = maps.Clone(f.Values)
	change(&f)
	return f
}

// FiltersFromQuery reads the grid state from a query string. ok is false when the query
// holds no parameter of this grid.
func (d Definition) FiltersFromQuery(q url.Values) (filters Filters, ok bool) {
	filters = d.DefaultFilters()
	prefix := d.ID + "["

	for k, values := range q {
		if !strings.HasPrefix(k, prefix) || len(values) == 0 {
			continue
		}
		ok = true
		parts := splitKey(strings.TrimPrefix(k, d.ID))
		value := values[0]

		switch {
		case len(parts) == 2 && parts[0] == "filters":
			filters.Values[parts[1]] = value
		case len(parts) == 1 && parts[0] == "orderBy":
			filters.OrderBy = value
		case len(parts) == 1 && parts[0] == "sortOrder":
			filters.SortOrder = value
		case len(parts) == 1 && parts[0] == "offset":
			filters.Offset, _ = strconv.Atoi(value)
		case len(parts) == 1 && parts[0] == "limit":
			filters.Limit, _ = strconv.Atoi(value)
		}
	}

	return d.Normalize(filters), ok
}

// FiltersFromSearch reads a posted search row, where each filter is named <grid>[<column>].
// Sorting and page size are kept from current; the offset goes back to the first page.
func (d Definition) FiltersFromSearch(form url.Values, current Filters) Filters {
	filters := current.With(func(f *Filters) {
		f.GridID = d.ID
		f.Offset = 0
		f.Values = map[string]string{}
	})

	for _, column := range d.FilterableColumns() {
		if v := strings.TrimSpace(form.Get(key(d.ID, column.ID))); v != "" {
			filters.Values[column.ID] = v
		}
	}

	return d.Normalize(filters)
}

// Normalize drops unknown filters and replaces unsupported sort, offset and limit values
// with the grid defaults.
func (d Definition) Normalize(f Filters) Filters {
	normalized := Filters{
		GridID:    d.ID,
		OrderBy:   f.OrderBy,
		SortOrder: strings.ToLower(f.SortOrder),
		Offset:    f.Offset,
		Limit:     f.Limit,
		Values:    map[string]string{},
	}

	for column, value := range f.Values {
		c, ok := d.Column(column)
		if !ok || c.Filter == NoFilter || value == "" {
			continue
		}
		if c.Filter == BoolFilter && value != "0" && value != "1" {
			continue
		}
		normalized.Values[column] = value
	}

	if c, ok := d.Column(normalized.OrderBy); !ok || !c.Sortable {
		normalized.OrderBy = d.DefaultOrderBy
	}
	if normalized.SortOrder != SortAsc && normalized.SortOrder != SortDesc {
		normalized.SortOrder = d.DefaultSortOrder
	}
	if !slices.Contains(Limits, normalized.Limit) {
		normalized.Limit = DefaultLimit
	}
	if normalized.Offset < 0 {
		normalized.Offset = 0
	}

	return normalized
}

func key(gridID string, parts ...string) string {
	var b strings.Builder
	b.WriteString(gridID)
	for _, p := range parts {
		b.WriteString("[")
		b.WriteString(p)
		b.WriteString("]")
	}
	return b.String()
}

// splitKey turns "[filters][name]" into ["filters", "name"].
func splitKey(s string) []string {
	var parts []string
	for strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return nil
		}
		parts = append(parts, s[1:end])
		s = s[end+1:]
	}
	if s != "" {
		return nil
	}
	return parts
}
