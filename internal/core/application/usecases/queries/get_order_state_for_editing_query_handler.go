package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"

	"gorm.io/gorm"
)

type GetOrderStateForEditingQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStateForEditingQueryHandler(db *gorm.DB) GetOrderStateForEditingQueryHandler {
	return GetOrderStateForEditingQueryHandler{db: db}
}

// Handle returns orderstate.ErrOrderStateNotFound for a missing or deleted state.
func (h GetOrderStateForEditingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStateForEditingQuery,
) (EditableOrderState, error) {
	if err := query.Validate(); err != nil {
		return EditableOrderState{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.ID().Bytes()

	var state struct {
		Color       string
		Logable     bool
		Invoice     bool
		Hidden      bool
		SendEmail   bool
		PdfInvoice  bool
		PdfDelivery bool
		Shipped     bool
		Paid        bool
		Delivery    bool
	}
	result := db.Raw(`
		SELECT
			color,
			logable,
			invoice,
			hidden,
			send_email,
			pdf_invoice,
			pdf_delivery,
			shipped,
			paid,
			delivery
		FROM order_states
		WHERE id = ? AND deleted = false
	`, id).Scan(&state)
	if result.Error != nil {
		return EditableOrderState{}, result.Error
	}
	if result.RowsAffected == 0 {
		return EditableOrderState{}, orderstate.NewNotFoundError(query.ID())
	}

	rows, err := db.Raw(`
		SELECT language, name, template
		FROM order_state_langs
		WHERE order_state_id = ?
		ORDER BY language
	`, id).Rows()
	if err != nil {
		return EditableOrderState{}, err
	}
	defer rows.Close()

	names := make(map[string]string)
	templates := make(map[string]string)
	for rows.Next() {
		var language, name, template string
		if err = rows.Scan(&language, &name, &template); err != nil {
			return EditableOrderState{}, err
		}
		names[language] = name
		templates[language] = template
	}
	if err = rows.Err(); err != nil {
		return EditableOrderState{}, err
	}

	return EditableOrderState{
		ID:        query.ID(),
		Names:     kernel.NewLocalizedString(names),
		Color:     state.Color,
		Templates: kernel.NewLocalizedString(templates),
		Flags: orderstate.NewFlags().
			With(orderstate.Loggable, state.Logable).
			With(orderstate.Invoice, state.Invoice).
			With(orderstate.Hidden, state.Hidden).
			With(orderstate.SendEmail, state.SendEmail).
			With(orderstate.PdfInvoice, state.PdfInvoice).
			With(orderstate.PdfDelivery, state.PdfDelivery).
			With(orderstate.Shipped, state.Shipped).
			With(orderstate.Paid, state.Paid).
			With(orderstate.Delivery, state.Delivery),
	}, nil
}
