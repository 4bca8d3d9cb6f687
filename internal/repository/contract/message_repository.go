package contract

import (
	"context"

	"copilot-be/internal/entity"
	"copilot-be/internal/repository/specification"
)

// MessageRepository is append-only: messages are never updated or deleted.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
