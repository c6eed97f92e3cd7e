// Package orderreturnstaterepo persists OrderReturnState aggregates in order_return_states
// and order_return_state_langs.
package orderreturnstaterepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"

	"github.com/google/uuid"
)

type OrderReturnStateDTO struct {
	ID    uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Color string                    `gorm:"type:varchar(32);not null"`
	Langs []OrderReturnStateLangDTO `gorm:"foreignKey:OrderReturnStateID;constraint:OnDelete:CASCADE"`
}

func (OrderReturnStateDTO) TableName() string {
	return "order_return_states"
}

type OrderReturnStateLangDTO struct {
	OrderReturnStateID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language           string    `gorm:"type:varchar(8);primaryKey"`
	Name               string    `gorm:"type:varchar(64);not null"`
}

func (OrderReturnStateLangDTO) TableName() string {
	return "order_return_state_langs"
}

func fromDomain(s *orderreturnstate.OrderReturnState) OrderReturnStateDTO {
	id := s.ID().Bytes()
	isoCodes := s.Names().IsoCodes()

	langs := make([]OrderReturnStateLangDTO, 0, len(isoCodes))
	for _, iso := range isoCodes {
		langs = append(langs, OrderReturnStateLangDTO{
			OrderReturnStateID: id,
			Language:           iso,
			Name:               s.Name(iso),
		})
	}

	return OrderReturnStateDTO{
		ID:    id,
		Color: s.Color().String(),
		Langs: langs,
	}
}

func toDomain(dto OrderReturnStateDTO) (*orderreturnstate.OrderReturnState, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	color, err := kernel.NewColor(dto.Color)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(dto.Langs))
	for _, lang := range dto.Langs {
		names[lang.Language] = lang.Name
	}

	return orderreturnstate.RestoreOrderReturnState(id, kernel.NewLocalizedString(names), color)
}
