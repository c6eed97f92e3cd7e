package gridfilterrepo

import (
	"context"
	"time"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGridFilterRepository implements ports.GridFilterRepository using GORM.
type GormGridFilterRepository struct {
	db *gorm.DB
}

func NewGormGridFilterRepository(db *gorm.DB) *GormGridFilterRepository {
	return &GormGridFilterRepository{db: db}
}

// Save upserts on (employee_id, grid_id).
func (r *GormGridFilterRepository) Save(ctx context.Context, filter ports.GridFilter) error {
	if err := filter.EmployeeID.Validate(); err != nil {
		return err
	}
	if filter.GridID == "" {
		return errs.NewValueIsRequiredError("gridId")
	}

	dto := fromDomain(filter)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "grid_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"filters", "updated_at"}),
		}).
		Create(&dto).Error
}

func (r *GormGridFilterRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&GridFilterDTO{})
	return result.RowsAffected, result.Error
}
