package controller

import (
	"encoding/json"
	"errors"

	"copilot-be/internal/dto"
	"copilot-be/internal/pkg/serverutils"
	"copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetMessages(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	GetPreview(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/sessions/:id/messages", c.GetMessages)
	r.Post("/sessions/:id/messages", c.SendChat)
	r.Get("/sessions/:id/preview", c.GetPreview)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		// An unparseable id matches no messages; not an error.
		return ctx.JSON(dto.ListMessagesResponse{Items: []dto.MessageItem{}})
	}

	res, err := c.service.GetMessages(ctx.Context(), sessionId)
	if err != nil {
		return c.mapError(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Session not found"))
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), sessionId, &req)
	if err != nil {
		return c.mapError(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *chatController) GetPreview(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.JSON(dto.GetPreviewResponse{
			SessionId: ctx.Params("id"),
			Preview:   json.RawMessage(nil),
		})
	}

	res, err := c.service.GetPreview(ctx.Context(), sessionId)
	if err != nil {
		return c.mapError(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *chatController) mapError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Session not found"))
	case errors.Is(err, service.ErrStoreUnavailable):
		return ctx.Status(fiber.StatusServiceUnavailable).
			JSON(serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "Store not connected"))
	}
	return err
}
