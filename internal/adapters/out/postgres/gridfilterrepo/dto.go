// Package gridfilterrepo stores the last filter each employee applied to each grid.
package gridfilterrepo

import (
	"time"

	"backoffice/internal/core/ports"

	"github.com/google/uuid"
)

type GridFilterDTO struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GridID     string    `gorm:"type:varchar(64);primaryKey"`
	Filters    string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"not null;index"`
}

func (GridFilterDTO) TableName() string {
	return "grid_filters"
}

func fromDomain(filter ports.GridFilter) GridFilterDTO {
	return GridFilterDTO{
		EmployeeID: filter.EmployeeID.Bytes(),
		GridID:     filter.GridID,
		Filters:    filter.Filters,
		UpdatedAt:  filter.UpdatedAt,
	}
}
