package implementation

import (
	"context"
	"errors"

	"copilot-be/internal/entity"
	"copilot-be/internal/mapper"
	"copilot-be/internal/model"
	"copilot-be/internal/repository/contract"
	"copilot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PreviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CopilotMapper
}

func NewPreviewRepository(db *gorm.DB) contract.PreviewRepository {
	return &PreviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewCopilotMapper(),
	}
}

func (r *PreviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PreviewRepositoryImpl) Create(ctx context.Context, preview *entity.Preview) error {
	m := r.mapper.PreviewToModel(preview)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*preview = *r.mapper.PreviewToEntity(m)
	return nil
}

func (r *PreviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preview, error) {
	var m model.Preview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PreviewToEntity(&m), nil
}

func (r *PreviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preview, error) {
	var models []*model.Preview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Preview, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PreviewToEntity(m)
	}
	return entities, nil
}

func (r *PreviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Preview{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
