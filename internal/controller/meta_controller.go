package controller

import (
	"fmt"

	"copilot-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IMetaController serves the diagnostic and discovery routes that live
// outside the /api group.
type IMetaController interface {
	RegisterRoutes(app *fiber.App)
	Root(ctx *fiber.Ctx) error
	Hello(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
	Schema(ctx *fiber.Ctx) error
}

type metaController struct {
	cfg *config.Config
	db  *gorm.DB // nil when the store was never connected
}

func NewMetaController(cfg *config.Config, db *gorm.DB) IMetaController {
	return &metaController{cfg: cfg, db: db}
}

func (c *metaController) RegisterRoutes(app *fiber.App) {
	app.Get("/", c.Root)
	app.Get("/api/hello", c.Hello)
	app.Get("/test", c.Test)
	app.Get("/schema", c.Schema)
}

func (c *metaController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": "CoPilot Backend is running"})
}

func (c *metaController) Hello(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": "Hello from the backend API!"})
}

// Test reports store health in-band; it never returns an error status.
func (c *metaController) Test(ctx *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setFlag(c.cfg.Database.URL != ""),
		"database_name":     setFlag(c.cfg.Database.Name != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if c.db != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		tables, err := c.db.Migrator().GetTables()
		if err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", msg)
		} else {
			if len(tables) > 10 {
				tables = tables[:10]
			}
			response["collections"] = tables
			response["database"] = "✅ Connected & Working"
		}
	}

	return ctx.JSON(response)
}

func (c *metaController) Schema(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"collections": []string{
			"session",
			"message",
			"preview",
			"user",
			"product",
		},
	})
}

func setFlag(isSet bool) string {
	if isSet {
		return "✅ Set"
	}
	return "❌ Not Set"
}
