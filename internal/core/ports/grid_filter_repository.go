package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// GridFilter is the last filter state an employee applied to a grid, serialized as the
// grid query string.
type GridFilter struct {
	EmployeeID kernel.UUID
	GridID     string
	Filters    string
	UpdatedAt  time.Time
}

// GridFilterRepository keeps one saved filter per employee and grid.
type GridFilterRepository interface {
	// Save inserts or replaces the filter of filter.EmployeeID on filter.GridID.
	Save(ctx context.Context, filter GridFilter) error

	// DeleteOlderThan removes filters not saved since cutoff and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
