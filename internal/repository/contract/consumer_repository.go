package contract

import (
	"context"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/repository/specification"
)

type ConsumerRepository interface {
	Create(ctx context.Context, consumer *entity.Consumer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consumer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consumer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
