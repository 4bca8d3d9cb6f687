package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"copilot-be/internal/constant"
	"copilot-be/internal/model"
	"copilot-be/pkg/database"
	"copilot-be/pkg/reply"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds one demo session per mode, each with a full chat exchange, so a
// fresh environment has data to click through.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("Error: DATABASE_URL is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	demos := []struct {
		mode   string
		prompt string
	}{
		{constant.ModeResume, "backend engineer with five years of Go experience"},
		{constant.ModeInterview, "distributed systems leadership mentoring"},
		{constant.ModeJobs, "golang remote"},
	}

	for _, demo := range demos {
		if err := seedSession(db, demo.mode, demo.prompt); err != nil {
			color.Red("Failed to seed %s session: %v", demo.mode, err)
			continue
		}
	}

	color.Cyan("Seeding completed")
}

func seedSession(db *gorm.DB, mode, prompt string) error {
	now := time.Now()
	title := fmt.Sprintf("Demo %s session", mode)

	session := model.Session{
		Id:        uuid.New(),
		Mode:      mode,
		Title:     &title,
		Status:    constant.SessionStatusActive,
		CreatedAt: now,
	}
	if err := db.Create(&session).Error; err != nil {
		return err
	}

	messages := []model.Message{
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.MessageRoleSystem,
			Content:   fmt.Sprintf(constant.SeedMessageFormat, mode),
			CreatedAt: now,
		},
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.MessageRoleUser,
			Content:   prompt,
			CreatedAt: now.Add(time.Second),
		},
	}

	generated := reply.Generate(mode, prompt)
	messages = append(messages, model.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      constant.MessageRoleAssistant,
		Content:   generated.Text,
		Meta:      datatypes.JSONMap{"mode": mode},
		CreatedAt: now.Add(2 * time.Second),
	})

	for _, message := range messages {
		if err := db.Create(&message).Error; err != nil {
			return err
		}
	}

	if generated.Preview != nil {
		content, err := json.Marshal(generated.Preview)
		if err != nil {
			return err
		}
		preview := model.Preview{
			Id:        uuid.New(),
			SessionId: session.Id,
			Mode:      mode,
			Content:   datatypes.JSON(content),
			CreatedAt: now.Add(2 * time.Second),
		}
		if err := db.Create(&preview).Error; err != nil {
			return err
		}
	}

	color.Green("Created %s session %s", mode, session.Id)
	return nil
}
