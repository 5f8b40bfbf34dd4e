package implementation

import (
	"context"
	"errors"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/mapper"
	"returnhub-be/internal/model"
	"returnhub-be/internal/repository/contract"
	"returnhub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConsumerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsumerMapper
}

func NewConsumerRepository(db *gorm.DB) contract.ConsumerRepository {
	return &ConsumerRepositoryImpl{
		db:     db,
		mapper: mapper.NewConsumerMapper(),
	}
}

func (r *ConsumerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConsumerRepositoryImpl) Create(ctx context.Context, consumer *entity.Consumer) error {
	m := r.mapper.ToModel(consumer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*consumer = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConsumerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consumer, error) {
	var m model.Consumer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConsumerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consumer, error) {
	var models []*model.Consumer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConsumerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Consumer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
