package postgres

import (
	"backoffice/internal/adapters/out/postgres/gridfilterrepo"
	"backoffice/internal/adapters/out/postgres/orderreturnstaterepo"
	"backoffice/internal/adapters/out/postgres/orderstaterepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the back-office, parents before children.
func Models() []any {
	return []any{
		&orderstaterepo.OrderStateDTO{},
		&orderstaterepo.OrderStateLangDTO{},
		&orderreturnstaterepo.OrderReturnStateDTO{},
		&orderreturnstaterepo.OrderReturnStateLangDTO{},
		&gridfilterrepo.GridFilterDTO{},
	}
}

// Migrate creates or alters the tables of Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
