package contract

import (
	"context"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/repository/specification"
)

// ReturnItemRepository is read-only: items enter the system exclusively
// through ReturnRepository.Create and are scoped to their parent return.
type ReturnItemRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReturnItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
