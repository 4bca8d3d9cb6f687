package service

import (
	"context"
	"encoding/json"

	"copilot-be/internal/pkg/logger"
	"copilot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process bus and writes audit log lines for
// session/preview activity.
type consumerService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, logger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		logger: logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	sessionCreated, err := cs.pubSub.Subscribe(ctx, events.TopicSessionCreated)
	if err != nil {
		return err
	}
	previewGenerated, err := cs.pubSub.Subscribe(ctx, events.TopicPreviewGenerated)
	if err != nil {
		return err
	}

	go func() {
		for msg := range sessionCreated {
			cs.processSessionCreated(msg)
		}
	}()
	go func() {
		for msg := range previewGenerated {
			cs.processPreviewGenerated(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processSessionCreated(msg *message.Message) {
	var payload events.SessionCreated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal session event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	cs.logger.Info("consumer", "Session created", map[string]interface{}{
		"session_id": payload.SessionId,
		"mode":       payload.Mode,
	})
	msg.Ack()
}

func (cs *consumerService) processPreviewGenerated(msg *message.Message) {
	var payload events.PreviewGenerated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal preview event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("consumer", "Preview generated", map[string]interface{}{
		"session_id":   payload.SessionId,
		"mode":         payload.Mode,
		"preview_type": payload.PreviewType,
	})
	msg.Ack()
}
