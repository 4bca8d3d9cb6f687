package service

import (
	"context"
	"encoding/json"
	"time"

	"copilot-be/internal/constant"
	"copilot-be/internal/dto"
	"copilot-be/internal/entity"
	"copilot-be/internal/pkg/logger"
	"copilot-be/internal/repository/specification"
	"copilot-be/internal/repository/unitofwork"
	"copilot-be/pkg/events"
	"copilot-be/pkg/reply"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IChatService interface {
	GetMessages(ctx context.Context, sessionId uuid.UUID) (*dto.ListMessagesResponse, error)
	SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetPreview(ctx context.Context, sessionId uuid.UUID) (*dto.GetPreviewResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger

	// Sessions are immutable after creation, so lookups can be cached.
	sessionCache *cache.Cache
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
		sessionCache:     cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (cs *chatService) lookupSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*entity.Session, error) {
	if cached, found := cs.sessionCache.Get(sessionId.String()); found {
		return cached.(*entity.Session), nil
	}

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session != nil {
		cs.sessionCache.Set(sessionId.String(), session, cache.DefaultExpiration)
	}
	return session, nil
}

// GetMessages never reports a missing session; an unknown id yields an empty
// list, matching the store's filter semantics.
func (cs *chatService) GetMessages(ctx context.Context, sessionId uuid.UUID) (*dto.ListMessagesResponse, error) {
	if cs.uowFactory == nil {
		return nil, ErrStoreUnavailable
	}
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ListMessagesResponse{Items: toMessageItems(messages)}, nil
}

func (cs *chatService) SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if cs.uowFactory == nil {
		return nil, ErrStoreUnavailable
	}
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// Verify the session exists before any write.
	session, err := cs.lookupSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	content := *req.Content
	now := time.Now()

	userMessage := entity.Message{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      constant.MessageRoleUser,
		Content:   content,
		CreatedAt: now,
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	generated := reply.Generate(session.Mode, content)

	// created_at is the only sort key and the store truncates it to
	// microseconds; stamp the pair strictly apart so their order never ties.
	assistantMessage := entity.Message{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      constant.MessageRoleAssistant,
		Content:   generated.Text,
		Meta:      map[string]interface{}{"mode": session.Mode},
		CreatedAt: now.Add(time.Microsecond),
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	if generated.Preview != nil {
		content, err := json.Marshal(generated.Preview)
		if err != nil {
			return nil, err
		}

		preview := entity.Preview{
			Id:        uuid.New(),
			SessionId: sessionId,
			Mode:      session.Mode,
			Content:   content,
			CreatedAt: time.Now(),
		}
		if err := uow.PreviewRepository().Create(ctx, &preview); err != nil {
			return nil, err
		}

		if err := cs.publisherService.Publish(events.TopicPreviewGenerated, events.PreviewGenerated{
			SessionId:   sessionId.String(),
			Mode:        session.Mode,
			PreviewType: generated.Preview.Type(),
			OccurredAt:  preview.CreatedAt,
		}); err != nil {
			cs.logger.Warn("chat", "Failed to publish preview event", map[string]interface{}{
				"session_id": sessionId.String(),
				"error":      err.Error(),
			})
		}
	}

	// Re-read from the store so the response reflects exactly what is
	// durable, including any store-side normalization. One extra round trip.
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		SessionId: sessionId.String(),
		Messages:  toMessageItems(messages),
		Preview:   generated.Preview,
	}, nil
}

// GetPreview returns the most recently created preview for the session, or a
// null preview when none exists.
func (cs *chatService) GetPreview(ctx context.Context, sessionId uuid.UUID) (*dto.GetPreviewResponse, error) {
	if cs.uowFactory == nil {
		return nil, ErrStoreUnavailable
	}
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	preview, err := uow.PreviewRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.GetPreviewResponse{SessionId: sessionId.String()}
	if preview != nil {
		res.Preview = preview.Content
	}
	return res, nil
}

func toMessageItems(messages []*entity.Message) []dto.MessageItem {
	items := make([]dto.MessageItem, 0, len(messages))
	for _, message := range messages {
		items = append(items, dto.MessageItem{
			Id:        message.Id.String(),
			SessionId: message.SessionId.String(),
			Role:      message.Role,
			Content:   message.Content,
			Meta:      message.Meta,
			CreatedAt: message.CreatedAt,
			UpdatedAt: message.UpdatedAt,
		})
	}
	return items
}
