package contract

import (
	"context"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/repository/specification"
)

type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	Update(ctx context.Context, merchant *entity.Merchant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Merchant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Merchant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
