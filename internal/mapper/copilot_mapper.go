package mapper

import (
	"encoding/json"
	"time"

	"copilot-be/internal/entity"
	"copilot-be/internal/model"

	"gorm.io/datatypes"
)

// CopilotMapper converts between store records and domain entities. All
// id/JSON coercion between the store-native types and the external
// representation happens here and nowhere else.
type CopilotMapper struct{}

func NewCopilotMapper() *CopilotMapper {
	return &CopilotMapper{}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Session Mappers

func (m *CopilotMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	return &entity.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Mode:      s.Mode,
		Title:     s.Title,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: optionalTime(s.UpdatedAt),
	}
}

func (m *CopilotMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Mode:      s.Mode,
		Title:     s.Title,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

// Message Mappers

func (m *CopilotMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var meta map[string]interface{}
	if msg.Meta != nil {
		meta = map[string]interface{}(msg.Meta)
	}

	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		Meta:      meta,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: optionalTime(msg.UpdatedAt),
	}
}

func (m *CopilotMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	var meta datatypes.JSONMap
	if msg.Meta != nil {
		meta = datatypes.JSONMap(msg.Meta)
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      msg.Role,
		Content:   msg.Content,
		Meta:      meta,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *CopilotMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

// Preview Mappers

func (m *CopilotMapper) PreviewToEntity(p *model.Preview) *entity.Preview {
	if p == nil {
		return nil
	}

	return &entity.Preview{
		Id:        p.Id,
		SessionId: p.SessionId,
		Mode:      p.Mode,
		Content:   json.RawMessage(p.Content),
		CreatedAt: p.CreatedAt,
		UpdatedAt: optionalTime(p.UpdatedAt),
	}
}

func (m *CopilotMapper) PreviewToModel(p *entity.Preview) *model.Preview {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Preview{
		Id:        p.Id,
		SessionId: p.SessionId,
		Mode:      p.Mode,
		Content:   datatypes.JSON(p.Content),
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
