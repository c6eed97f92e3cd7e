// Package postgres is the GORM persistence adapter: the unit of work binding the
// order state, order return state and grid filter repositories to one transaction,
// plus the schema migration.
//
// Usage:
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck
//
//	state, err := uow.OrderStateRepository().GetForUpdate(ctx, id)
//	// ... mutate state
//	if err := uow.OrderStateRepository().Update(ctx, state); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork holds at most one transaction and must not be shared between goroutines.
package postgres

import (
	"context"

	"backoffice/internal/adapters/out/postgres/gridfilterrepo"
	"backoffice/internal/adapters/out/postgres/orderreturnstaterepo"
	"backoffice/internal/adapters/out/postgres/orderstaterepo"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps a single GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderStateRepository() ports.OrderStateRepository {
	return orderstaterepo.NewGormOrderStateRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderReturnStateRepository() ports.OrderReturnStateRepository {
	return orderreturnstaterepo.NewGormOrderReturnStateRepository(uow.conn())
}

func (uow *GormUnitOfWork) GridFilterRepository() ports.GridFilterRepository {
	return gridfilterrepo.NewGormGridFilterRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
