package main

import (
	"context"
	"log"

	"copilot-be/internal/bootstrap"
	"copilot-be/internal/config"
	"copilot-be/internal/server"
	"copilot-be/internal/tracer"
	"copilot-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database. A missing or unreachable store degrades /test
	// diagnostics but does not prevent startup.
	var gormDB *gorm.DB
	if cfg.Database.URL == "" {
		log.Println("[WARN] DATABASE_URL is not set; starting without a store")
	} else if db, err := database.NewGormDBFromDSN(cfg.Database.URL); err != nil {
		log.Printf("[WARN] Unable to connect to store: %v; starting without a store", err)
	} else {
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Consumer
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
