package orderreturnstaterepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderReturnStateRepository implements ports.OrderReturnStateRepository using GORM.
type GormOrderReturnStateRepository struct {
	db *gorm.DB
}

func NewGormOrderReturnStateRepository(db *gorm.DB) *GormOrderReturnStateRepository {
	return &GormOrderReturnStateRepository{db: db}
}

func (r *GormOrderReturnStateRepository) Add(ctx context.Context, aggregate *orderreturnstate.OrderReturnState) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update replaces the color and every localized name.
func (r *GormOrderReturnStateRepository) Update(ctx context.Context, aggregate *orderreturnstate.OrderReturnState) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderReturnStateDTO{}).Where("id = ?", dto.ID).Update("color", dto.Color)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderReturnStateId", aggregate.ID().String())
	}

	if err := db.Where("order_return_state_id = ?", dto.ID).Delete(&OrderReturnStateLangDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Langs) == 0 {
		return nil
	}
	return db.Create(&dto.Langs).Error
}

func (r *GormOrderReturnStateRepository) Get(ctx context.Context, id kernel.UUID) (*orderreturnstate.OrderReturnState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderReturnStateDTO
	if err := r.db.WithContext(ctx).Preload("Langs").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderReturnStateId", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}
