package queries

import (
	"context"

	"backoffice/internal/core/application/grid"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderStatesGridSQL = gridSQL{
	columns: map[string]gridColumn{
		"name":       {expr: "COALESCE(l.name, '')"},
		"send_email": {expr: "s.send_email"},
		"delivery":   {expr: "s.delivery"},
		"invoice":    {expr: "s.invoice"},
		"template":   {expr: "COALESCE(l.template, '')"},
	},
	from: `
		FROM order_states s
		LEFT JOIN order_state_langs l ON l.order_state_id = s.id AND l.language = ?`,
	tieKey: "s.id",
}

// GetOrderStatesGridQueryHandler lists the non-deleted order states. It is the grid.Source
// of the order states grid.
type GetOrderStatesGridQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatesGridQueryHandler(db *gorm.DB) GetOrderStatesGridQueryHandler {
	return GetOrderStatesGridQueryHandler{db: db}
}

func (h GetOrderStatesGridQueryHandler) Fetch(ctx context.Context, filters grid.Filters, language string) (grid.Page, error) {
	query, err := NewGetGridQuery(filters, language)
	if err != nil {
		return grid.Page{}, err
	}
	return h.Handle(ctx, query)
}

func (h GetOrderStatesGridQueryHandler) Handle(ctx context.Context, query GetGridQuery) (grid.Page, error) {
	if err := query.Validate(); err != nil {
		return grid.Page{}, err
	}

	definition := grid.OrderStatesDefinition()
	filters := query.Filters()
	where, args := orderStatesGridSQL.where("s.deleted = false", []any{query.Language()}, filters, definition)
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw("SELECT COUNT(*)"+orderStatesGridSQL.from+" WHERE "+where, args...).Scan(&total).Error; err != nil {
		return grid.Page{}, err
	}

	rows, err := db.Raw(`
		SELECT
			s.id,
			s.color,
			COALESCE(l.name, '') AS name,
			s.send_email AS send_email,
			s.delivery AS delivery,
			s.invoice AS invoice,
			COALESCE(l.template, '') AS template`+
		orderStatesGridSQL.from+`
		WHERE `+where+`
		ORDER BY `+orderStatesGridSQL.orderBy(filters, definition)+`
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
			id                           uuid.UUID
			color, name, template        string
			sendEmail, delivery, invoice bool
		)
		if err = rows.Scan(&id, &color, &name, &sendEmail, &delivery, &invoice, &template); err != nil {
			return grid.Page{}, err
		}
		page.Rows = append(page.Rows, grid.Row{
			ID:    id.String(),
			Color: color,
			Text:  map[string]string{"name": name, "template": template},
			Bool:  map[string]bool{"send_email": sendEmail, "delivery": delivery, "invoice": invoice},
		})
	}
	if err = rows.Err(); err != nil {
		return grid.Page{}, err
	}

	return page, nil
}
