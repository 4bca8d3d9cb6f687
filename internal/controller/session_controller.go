package controller

import (
	"errors"

	"copilot-be/internal/dto"
	"copilot-be/internal/pkg/serverutils"
	"copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions", c.Create)
	r.Get("/sessions", c.GetAll)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			return ctx.Status(fiber.StatusServiceUnavailable).
				JSON(serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "Store not connected"))
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) GetAll(ctx *fiber.Ctx) error {
	var userId *string
	if q := ctx.Query("user_id"); q != "" {
		userId = &q
	}

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			return ctx.Status(fiber.StatusServiceUnavailable).
				JSON(serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "Store not connected"))
		}
		return err
	}

	return ctx.JSON(res)
}
