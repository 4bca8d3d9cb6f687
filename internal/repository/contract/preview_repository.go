package contract

import (
	"context"

	"copilot-be/internal/entity"
	"copilot-be/internal/repository/specification"
)

type PreviewRepository interface {
	Create(ctx context.Context, preview *entity.Preview) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preview, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
