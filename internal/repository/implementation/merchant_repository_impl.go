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

type MerchantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MerchantMapper
}

func NewMerchantRepository(db *gorm.DB) contract.MerchantRepository {
	return &MerchantRepositoryImpl{
		db:     db,
		mapper: mapper.NewMerchantMapper(),
	}
}

func (r *MerchantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MerchantRepositoryImpl) Create(ctx context.Context, merchant *entity.Merchant) error {
	m := r.mapper.ToModel(merchant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*merchant = *r.mapper.ToEntity(m)
	return nil
}

func (r *MerchantRepositoryImpl) Update(ctx context.Context, merchant *entity.Merchant) error {
	m := r.mapper.ToModel(merchant)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*merchant = *r.mapper.ToEntity(m)
	return nil
}

func (r *MerchantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Merchant, error) {
	var m model.Merchant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MerchantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Merchant, error) {
	var models []*model.Merchant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MerchantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Merchant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
