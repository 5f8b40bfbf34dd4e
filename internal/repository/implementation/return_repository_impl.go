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

type ReturnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReturnMapper
}

func NewReturnRepository(db *gorm.DB) contract.ReturnRepository {
	return &ReturnRepositoryImpl{
		db:     db,
		mapper: mapper.NewReturnMapper(),
	}
}

func (r *ReturnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the return row and all item rows. GORM writes the Items
// association in the same statement batch, so inside a unit-of-work
// transaction the whole graph commits or rolls back together.
func (r *ReturnRepositoryImpl) Create(ctx context.Context, ret *entity.Return) error {
	m := r.mapper.ToModel(ret)
	if err := r.db.WithContext(ctx).Omit("Merchant", "Consumer").Create(m).Error; err != nil {
		return err
	}
	*ret = *r.mapper.ToEntity(m)
	return nil
}

// Update persists scalar return fields only. Items are immutable, so the
// association is skipped to avoid GORM upserting them on every save.
func (r *ReturnRepositoryImpl) Update(ctx context.Context, ret *entity.Return) error {
	m := r.mapper.ToModel(ret)
	if err := r.db.WithContext(ctx).Omit("Items", "Merchant", "Consumer").Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *ReturnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Return, error) {
	var m model.Return
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("return_items.created_at ASC")
	}).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReturnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Return, error) {
	var models []*model.Return
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("return_items.created_at ASC")
	}).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReturnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Return{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
