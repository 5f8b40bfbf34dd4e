package contract

import (
	"context"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/repository/specification"
)

// ReturnRepository persists returns together with their item ledger.
// Create writes the return and all of its items in one statement batch;
// Update never touches items (they are immutable after creation).
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.Return) error
	Update(ctx context.Context, ret *entity.Return) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Return, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Return, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
