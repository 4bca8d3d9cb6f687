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

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CopilotMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCopilotMapper(),
	}
}

func (r *SessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	var m model.Session
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

func (r *SessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var models []*model.Session
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Session, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionToEntity(m)
	}
	return entities, nil
}

func (r *SessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Session{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
