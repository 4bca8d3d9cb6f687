package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(topic string, payload interface{}) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
	}
}

func (p *publisherService) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(topic, msg)
}
