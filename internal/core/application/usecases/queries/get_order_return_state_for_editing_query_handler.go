package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"

	"gorm.io/gorm"
)

type GetOrderReturnStateForEditingQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderReturnStateForEditingQueryHandler(db *gorm.DB) GetOrderReturnStateForEditingQueryHandler {
	return GetOrderReturnStateForEditingQueryHandler{db: db}
}

func (h GetOrderReturnStateForEditingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReturnStateForEditingQuery,
) (EditableOrderReturnState, error) {
	if err := query.Validate(); err != nil {
		return EditableOrderReturnState{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.color, l.language, l.name
		FROM order_return_states s
		LEFT JOIN order_return_state_langs l ON l.order_return_state_id = s.id
		WHERE s.id = ?
	`, query.ID().Bytes()).Rows()
	if err != nil {
		return EditableOrderReturnState{}, err
	}
	defer rows.Close()

	found := false
	state := EditableOrderReturnState{ID: query.ID()}
	names := make(map[string]string)
	for rows.Next() {
		var language, name *string
		if err = rows.Scan(&state.Color, &language, &name); err != nil {
			return EditableOrderReturnState{}, err
		}
		found = true
		if language != nil && name != nil {
			names[*language] = *name
		}
	}
	if err = rows.Err(); err != nil {
		return EditableOrderReturnState{}, err
	}
	if !found {
		return EditableOrderReturnState{}, orderreturnstate.NewNotFoundError(query.ID())
	}

	state.Names = kernel.NewLocalizedString(names)
	return state, nil
}
