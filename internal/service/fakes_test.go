package service

import (
	"context"
	"sort"

	"copilot-be/internal/dto"
	"copilot-be/internal/entity"
	"copilot-be/internal/repository/contract"
	"copilot-be/internal/repository/specification"
	"copilot-be/internal/repository/unitofwork"
)

// fakeStore is an in-memory stand-in for the document store. Repositories
// interpret the same specification values the GORM implementations translate
// to SQL, so service-level queries behave like production ones.
type fakeStore struct {
	sessions []*entity.Session
	messages []*entity.Message
	previews []*entity.Preview

	sessionCreateErr error
	messageCreateErr error
	previewCreateErr error
}

type fakeSessionRepository struct{ store *fakeStore }

func (r *fakeSessionRepository) Create(_ context.Context, session *entity.Session) error {
	if r.store.sessionCreateErr != nil {
		return r.store.sessionCreateErr
	}
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Session, error) {
	for _, session := range r.store.sessions {
		if matchSession(session, specs) {
			return session, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var result []*entity.Session
	for _, session := range r.store.sessions {
		if matchSession(session, specs) {
			result = append(result, session)
		}
	}
	orderSessions(result, specs)
	return result, nil
}

func (r *fakeSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func matchSession(session *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if session.UserId == nil || *session.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func orderSessions(sessions []*entity.Session, specs []specification.Specification) {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(sessions, func(i, j int) bool {
				if s.Desc {
					return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
				}
				return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
			})
		}
	}
}

type fakeMessageRepository struct{ store *fakeStore }

func (r *fakeMessageRepository) Create(_ context.Context, message *entity.Message) error {
	if r.store.messageCreateErr != nil {
		return r.store.messageCreateErr
	}
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *fakeMessageRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, message := range r.store.messages {
		if matchMessage(message, specs) {
			result = append(result, message)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(result, func(i, j int) bool {
				if s.Desc {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			})
		}
	}
	return result, nil
}

func (r *fakeMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func matchMessage(message *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.BySessionID); ok && message.SessionId != s.SessionID {
			return false
		}
	}
	return true
}

type fakePreviewRepository struct{ store *fakeStore }

func (r *fakePreviewRepository) Create(_ context.Context, preview *entity.Preview) error {
	if r.store.previewCreateErr != nil {
		return r.store.previewCreateErr
	}
	r.store.previews = append(r.store.previews, preview)
	return nil
}

func (r *fakePreviewRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preview, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakePreviewRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Preview, error) {
	var result []*entity.Preview
	for _, preview := range r.store.previews {
		if matchPreview(preview, specs) {
			result = append(result, preview)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(result, func(i, j int) bool {
				if s.Desc {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			})
		}
	}
	return result, nil
}

func (r *fakePreviewRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func matchPreview(preview *entity.Preview, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.BySessionID); ok && preview.SessionId != s.SessionID {
			return false
		}
	}
	return true
}

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepository{store: u.store}
}

func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepository{store: u.store}
}

func (u *fakeUnitOfWork) PreviewRepository() contract.PreviewRepository {
	return &fakePreviewRepository{store: u.store}
}

type fakeRepositoryFactory struct{ store *fakeStore }

func (f *fakeRepositoryFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

func chatReq(content string) *dto.ChatRequest {
	return &dto.ChatRequest{Content: &content}
}

type publishedEvent struct {
	Topic   string
	Payload interface{}
}

type fakePublisher struct {
	published  []publishedEvent
	publishErr error
}

func (p *fakePublisher) Publish(topic string, payload interface{}) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.published = append(p.published, publishedEvent{Topic: topic, Payload: payload})
	return nil
}
