package contract

import (
	"context"

	"copilot-be/internal/entity"
	"copilot-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
