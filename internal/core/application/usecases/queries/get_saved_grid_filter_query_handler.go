package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetSavedGridFilterQueryHandler struct {
	db *gorm.DB
}

func NewGetSavedGridFilterQueryHandler(db *gorm.DB) GetSavedGridFilterQueryHandler {
	return GetSavedGridFilterQueryHandler{db: db}
}

// Handle returns the saved query string, and false when the employee never filtered the grid.
func (h GetSavedGridFilterQueryHandler) Handle(ctx context.Context, query GetSavedGridFilterQuery) (string, bool, error) {
	if err := query.Validate(); err != nil {
		return "", false, err
	}

	var filters []string
	err := h.db.WithContext(ctx).Raw(`
		SELECT filters
		FROM grid_filters
		WHERE employee_id = ? AND grid_id = ?
	`, query.EmployeeID().Bytes(), query.GridID()).Scan(&filters).Error
	if err != nil {
		return "", false, err
	}
	if len(filters) == 0 {
		return "", false, nil
	}
	return filters[0], true, nil
}
