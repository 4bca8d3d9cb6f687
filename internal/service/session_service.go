package service

import (
	"context"
	"fmt"
	"time"

	"copilot-be/internal/constant"
	"copilot-be/internal/dto"
	"copilot-be/internal/entity"
	"copilot-be/internal/pkg/logger"
	"copilot-be/internal/repository/specification"
	"copilot-be/internal/repository/unitofwork"
	"copilot-be/pkg/events"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAll(ctx context.Context, userId *string) (*dto.ListSessionsResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

// Create writes the session and then its seed system message. The two writes
// are independent: if the second fails the session persists without its seed
// message and the error is returned as-is.
func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if s.uowFactory == nil {
		return nil, ErrStoreUnavailable
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	session := entity.Session{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Mode:      req.Mode,
		Title:     req.Title,
		Status:    constant.SessionStatusActive,
		CreatedAt: now,
	}

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	seed := entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      constant.MessageRoleSystem,
		Content:   fmt.Sprintf(constant.SeedMessageFormat, req.Mode),
		CreatedAt: now,
	}

	if err := uow.MessageRepository().Create(ctx, &seed); err != nil {
		s.logger.Warn("session", "Session created without seed message", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	if err := s.publisherService.Publish(events.TopicSessionCreated, events.SessionCreated{
		SessionId:  session.Id.String(),
		Mode:       session.Mode,
		OccurredAt: now,
	}); err != nil {
		s.logger.Warn("session", "Failed to publish session created event", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	return &dto.CreateSessionResponse{
		SessionId: session.Id.String(),
	}, nil
}

func (s *sessionService) GetAll(ctx context.Context, userId *string) (*dto.ListSessionsResponse, error) {
	if s.uowFactory == nil {
		return nil, ErrStoreUnavailable
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if userId != nil {
		specs = append(specs, specification.ByUserID{UserID: *userId})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SessionItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, dto.SessionItem{
			Id:        session.Id.String(),
			UserId:    session.UserId,
			Mode:      session.Mode,
			Title:     session.Title,
			Status:    session.Status,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}

	return &dto.ListSessionsResponse{Items: items}, nil
}
