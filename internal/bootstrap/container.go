package bootstrap

import (
	"log"

	"copilot-be/internal/config"
	"copilot-be/internal/controller"
	"copilot-be/internal/pkg/logger"
	"copilot-be/internal/repository/unitofwork"
	"copilot-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MetaController    controller.IMetaController
	SessionController controller.ISessionController
	ChatController    controller.IChatController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires everything. A nil db is tolerated: the server still
// starts and data endpoints answer 503 until a store is configured.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		log.Println("[WARN] Store not connected; data endpoints will return 503")
	}

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(pubSub)
	sessionService := service.NewSessionService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(uowFactory, publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	return &Container{
		MetaController:    controller.NewMetaController(cfg, db),
		SessionController: controller.NewSessionController(sessionService),
		ChatController:    controller.NewChatController(chatService),
		ConsumerService:   consumerService,
	}
}
