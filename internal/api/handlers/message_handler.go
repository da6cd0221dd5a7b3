package handlers

import (
	"errors"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	s service.MessageService
}

func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{s: service}
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	brand := GetBrand(c)

	messages, err := h.s.List(c.Context(), brand)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list message templates",
		})
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	brand := GetBrand(c)

	var mc transfer.MessageCreation
	if err := c.BodyParser(&mc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	id, err := h.s.Create(c.Context(), brand, &mc)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidTag) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id": id,
	})
}

func (h *MessageHandler) UpdateMessage(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var mu transfer.MessageUpdate
	if err := c.BodyParser(&mu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.Update(c.Context(), brand, id, &mu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *MessageHandler) RemoveMessage(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.Remove(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove message template",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}
