package queries

import (
	"strings"

	"backoffice/internal/core/application/grid"

	"github.com/lib/pq"
)

// gridColumn maps a grid column to the SQL expression filtered on. Sorting uses the
// quoted column alias of the SELECT list, which carries the same name.
type gridColumn struct {
	expr string
}

type gridSQL struct {
	columns map[string]gridColumn
	from    string
	tieKey  string
}

// where returns the conditions and arguments of the filter values, appended to base.
func (g gridSQL) where(base string, args []any, filters grid.Filters, definition grid.Definition) (string, []any) {
	conditions := []string{base}

	for _, column := range definition.FilterableColumns() {
		value := filters.Value(column.ID)
		sqlColumn, ok := g.columns[column.ID]
		if value == "" || !ok {
			continue
		}

		switch column.Filter { //nolint:exhaustive // columns without a filter are skipped above
		case grid.TextFilter:
			conditions = append(conditions, sqlColumn.expr+` ILIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(value)+"%")
		case grid.BoolFilter:
			conditions = append(conditions, sqlColumn.expr+" = ?")
			args = append(args, value == "1")
		}
	}

	return strings.Join(conditions, " AND "), args
}

// orderBy only ever emits a column known to the definition, quoted, plus the tie key so
// pagination is stable.
func (g gridSQL) orderBy(filters grid.Filters, definition grid.Definition) string {
	column := filters.OrderBy
	if _, ok := g.columns[column]; !ok {
		column = definition.DefaultOrderBy
	}
	direction := "ASC"
	if filters.SortOrder == grid.SortDesc {
		direction = "DESC"
	}
	return pq.QuoteIdentifier(column) + " " + direction + ", " + g.tieKey
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
