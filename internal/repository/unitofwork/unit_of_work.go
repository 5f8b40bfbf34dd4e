package unitofwork

import (
	"context"

	"returnhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MerchantRepository() contract.MerchantRepository
	ConsumerRepository() contract.ConsumerRepository
	ReturnRepository() contract.ReturnRepository
	ReturnItemRepository() contract.ReturnItemRepository
}
