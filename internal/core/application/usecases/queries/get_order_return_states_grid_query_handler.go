package queries

import (
	"context"

	"backoffice/internal/core/application/grid"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderReturnStatesGridSQL = gridSQL{
	columns: map[string]gridColumn{
		"name": {expr: "COALESCE(l.name, '')"},
	},
	from: `
		FROM order_return_states s
		LEFT JOIN order_return_state_langs l ON l.order_return_state_id = s.id AND l.language = ?`,
	tieKey: "s.id",
}

// GetOrderReturnStatesGridQueryHandler is the grid.Source of the return states grid.
type GetOrderReturnStatesGridQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderReturnStatesGridQueryHandler(db *gorm.DB) GetOrderReturnStatesGridQueryHandler {
	return GetOrderReturnStatesGridQueryHandler{db: db}
}

func (h GetOrderReturnStatesGridQueryHandler) Fetch(ctx context.Context, filters grid.Filters, language string) (grid.Page, error) {
	query, err := NewGetGridQuery(filters, language)
	if err != nil {
		return grid.Page{}, err
	}
	return h.Handle(ctx, query)
}

func (h GetOrderReturnStatesGridQueryHandler) Handle(ctx context.Context, query GetGridQuery) (grid.Page, error) {
	if err := query.Validate(); err != nil {
		return grid.Page{}, err
	}

	definition := grid.OrderReturnStatesDefinition()
	filters := query.Filters()
	where, args := orderReturnStatesGridSQL.where("TRUE", []any{query.Language()}, filters, definition)
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw("SELECT COUNT(*)"+orderReturnStatesGridSQL.from+" WHERE "+where, args...).Scan(&total).Error; err != nil {
		return grid.Page{}, err
	}

	rows, err := db.Raw(`
		SELECT s.id, s.color, COALESCE(l.name, '') AS name`+
		orderReturnStatesGridSQL.from+`
		WHERE `+where+`
		ORDER BY `+orderReturnStatesGridSQL.orderBy(filters, definition)+`
		LIMIT ? OFFSET ?`,
		append(args, filters.Limit, filters.Offset)...,
	).Rows()
	if err != nil {
		return grid.Page{}, err
	}
	defer rows.Close()

	page := grid.Page{Rows: make([]grid.Row, 0), Total: int(total)}
	for rows.Next() {
		var (
			id          uuid.UUID
			color, name string
		)
		if err = rows.Scan(&id, &color, &name); err != nil {
			return grid.Page{}, err
		}
		page.Rows = append(page.Rows, grid.Row{
			ID:    id.String(),
			Color: color,
			Text:  map[string]string{"name": name},
		})
	}
	if err = rows.Err(); err != nil {
		return grid.Page{}, err
	}

	return page, nil
}
