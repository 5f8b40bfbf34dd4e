package unitofwork

import (
	"context"
	"fmt"

	"returnhub-be/internal/repository/contract"
	"returnhub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil until Begin
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) MerchantRepository() contract.MerchantRepository {
	return implementation.NewMerchantRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConsumerRepository() contract.ConsumerRepository {
	return implementation.NewConsumerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReturnRepository() contract.ReturnRepository {
	return implementation.NewReturnRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReturnItemRepository() contract.ReturnItemRepository {
	return implementation.NewReturnItemRepository(u.getDB())
}
