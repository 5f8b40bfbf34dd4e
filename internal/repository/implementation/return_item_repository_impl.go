package implementation

import (
	"context"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/mapper"
	"returnhub-be/internal/model"
	"returnhub-be/internal/repository/contract"
	"returnhub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReturnItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReturnMapper
}

func NewReturnItemRepository(db *gorm.DB) contract.ReturnItemRepository {
	return &ReturnItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewReturnMapper(),
	}
}

func (r *ReturnItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReturnItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReturnItem, error) {
	var models []*model.ReturnItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

func (r *ReturnItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReturnItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
