package orderstaterepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStateRepository implements ports.OrderStateRepository using GORM.
type GormOrderStateRepository struct {
	db *gorm.DB
}

func NewGormOrderStateRepository(db *gorm.DB) *GormOrderStateRepository {
	return &GormOrderStateRepository{db: db}
}

// Add inserts the state and its localized rows.
func (r *GormOrderStateRepository) Add(ctx context.Context, aggregate *orderstate.OrderState) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column, including false flags, and replaces the localized rows.
// Call it inside a unit of work so both statements commit together.
func (r *GormOrderStateRepository) Update(ctx context.Context, aggregate *orderstate.OrderState) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderStateDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID", "Langs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderStateId", aggregate.ID().String())
	}

	if err := db.Where("order_state_id = ?", dto.ID).Delete(&OrderStateLangDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Langs) == 0 {
		return nil
	}
	return db.Create(&dto.Langs).Error
}

func (r *GormOrderStateRepository) Get(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order_states row with SELECT ... FOR UPDATE.
func (r *GormOrderStateRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*orderstate.OrderState, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderStateRepository) get(db *gorm.DB, id kernel.UUID) (*orderstate.OrderState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderStateDTO
	if err := db.Preload("Langs").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderStateId", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

const duplicateNameSQL = `
SELECT l.name
FROM order_state_langs l
JOIN order_states s ON s.id = l.order_state_id
WHERE s.deleted = false
  AND l.language = ?
  AND LOWER(l.name) = LOWER(?)
  AND s.id <> ?
LIMIT 1`

// FindDuplicateName compares names case-insensitively, language by language.
func (r *GormOrderStateRepository) FindDuplicateName(
	ctx context.Context,
	names kernel.LocalizedString,
	exclude kernel.UUID,
) (string, error) {
	excludeID := uuid.Nil
	if !exclude.IsZero() {
		excludeID = exclude.Bytes()
	}

	for _, iso := range names.IsoCodes() {
		var found []string
		if err := r.db.WithContext(ctx).Raw(duplicateNameSQL, iso, names.Get(iso), excludeID).Scan(&found).Error; err != nil {
			return "", err
		}
		if len(found) > 0 {
			return names.Get(iso), nil
		}
	}
	return "", nil
}
