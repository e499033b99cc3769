package controller

import (
	"errors"

	"cs-chatbot-be/internal/dto"
	"cs-chatbot-be/internal/pkg/logger"
	"cs-chatbot-be/internal/pkg/serverutils"
	"cs-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	log     logger.ILogger
}

func NewChatbotController(service service.IChatbotService, log logger.ILogger) IChatbotController {
	return &chatbotController{service: service, log: log}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")
	h.Get("/health", c.Health)
	h.Post("/message", c.SendMessage)
	h.Post("/reset", c.Reset)
}

func (c *chatbotController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Health())
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorBody("Message is required", ""))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorBody("Message is required", ""))
	}

	requestId := uuid.NewString()
	c.log.Debug("controller", "Incoming chat message", map[string]interface{}{
		"request_id": requestId,
		"session_id": req.SessionId,
	})

	res, err := c.service.SendMessage(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorBody("Message is required", ""))
		}
		c.log.Error("controller", "Chat request failed", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			serverutils.ErrorBody("An error occurred processing your message", err.Error()),
		)
	}

	return ctx.JSON(res)
}

func (c *chatbotController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetRequest
	// A missing or empty body resets the default session.
	_ = ctx.BodyParser(&req)

	return ctx.JSON(c.service.ResetConversation(ctx.Context(), &req))
}
