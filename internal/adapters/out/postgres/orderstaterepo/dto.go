// Package orderstaterepo persists OrderState aggregates: one order_states row per state
// and one order_state_langs row per translated language.
package orderstaterepo

import (
	"slices"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"

	"github.com/google/uuid"
)

// OrderStateDTO is the order_states row. Flag columns are named after orderstate.Flag.String.
type OrderStateDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Color       string    `gorm:"type:varchar(32);not null"`
	Logable     bool      `gorm:"not null"`
	Invoice     bool      `gorm:"not null"`
	Hidden      bool      `gorm:"not null"`
	SendEmail   bool      `gorm:"not null"`
	PdfInvoice  bool      `gorm:"not null"`
	PdfDelivery bool      `gorm:"not null"`
	Shipped     bool      `gorm:"not null"`
	Paid        bool      `gorm:"not null"`
	Delivery    bool      `gorm:"not null"`
	Deleted     bool      `gorm:"not null;index"`

	Langs []OrderStateLangDTO `gorm:"foreignKey:OrderStateID;constraint:OnDelete:CASCADE"`
}

func (OrderStateDTO) TableName() string {
	return "order_states"
}

// OrderStateLangDTO holds the name and mail template of one language.
type OrderStateLangDTO struct {
	OrderStateID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language     string    `gorm:"type:varchar(8);primaryKey"`
	Name         string    `gorm:"type:varchar(64);not null;index"`
	Template     string    `gorm:"type:varchar(64);not null"`
}

func (OrderStateLangDTO) TableName() string {
	return "order_state_langs"
}

func fromDomain(s *orderstate.OrderState) OrderStateDTO {
	id := s.ID().Bytes()

	isoCodes := append(s.Names().IsoCodes(), s.Templates().IsoCodes()...)
	slices.Sort(isoCodes)
	isoCodes = slices.Compact(isoCodes)

	langs := make([]OrderStateLangDTO, 0, len(isoCodes))
	for _, iso := range isoCodes {
		langs = append(langs, OrderStateLangDTO{
			OrderStateID: id,
			Language:     iso,
			Name:         s.Name(iso),
			Template:     s.Templates().Get(iso),
		})
	}

	return OrderStateDTO{
		ID:          id,
		Color:       s.Color().String(),
		Logable:     s.Has(orderstate.Loggable),
		Invoice:     s.Has(orderstate.Invoice),
		Hidden:      s.Has(orderstate.Hidden),
		SendEmail:   s.Has(orderstate.SendEmail),
		PdfInvoice:  s.Has(orderstate.PdfInvoice),
		PdfDelivery: s.Has(orderstate.PdfDelivery),
		Shipped:     s.Has(orderstate.Shipped),
		Paid:        s.Has(orderstate.Paid),
		Delivery:    s.Has(orderstate.Delivery),
		Deleted:     s.IsDeleted(),
		Langs:       langs,
	}
}

func toDomain(dto OrderStateDTO) (*orderstate.OrderState, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	color, err := kernel.NewColor(dto.Color)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(dto.Langs))
	templates := make(map[string]string, len(dto.Langs))
	for _, lang := range dto.Langs {
		names[lang.Language] = lang.Name
		templates[lang.Language] = lang.Template
	}

	flags := orderstate.NewFlags().
		With(orderstate.Loggable, dto.Logable).
		With(orderstate.Invoice, dto.Invoice).
		With(orderstate.Hidden, dto.Hidden).
		With(orderstate.SendEmail, dto.SendEmail).
		With(orderstate.PdfInvoice, dto.PdfInvoice).
		With(orderstate.PdfDelivery, dto.PdfDelivery).
		With(orderstate.Shipped, dto.Shipped).
		With(orderstate.Paid, dto.Paid).
		With(orderstate.Delivery, dto.Delivery)

	return orderstate.RestoreOrderState(
		id,
		kernel.NewLocalizedString(names),
		color,
		kernel.NewLocalizedString(templates),
		flags,
		dto.Deleted,
	)
}
