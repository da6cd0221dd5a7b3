package handlers

import (
	"errors"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/queue"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type ImageHandler struct {
	s           service.ImageService
	AsynqClient *asynq.Client
}

func NewImageHandler(service service.ImageService, asynqClient *asynq.Client) *ImageHandler {
	return &ImageHandler{s: service, AsynqClient: asynqClient}
}

func (h *ImageHandler) ListImages(c *fiber.Ctx) error {
	brand := GetBrand(c)

	images, err := h.s.List(c.Context(), brand)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list images",
		})
	}

	return c.Status(fiber.StatusOK).JSON(images)
}

func (h *ImageHandler) CreateImage(c *fiber.Ctx) error {
	brand := GetBrand(c)

	var ic transfer.ImageCreation
	if err := c.BodyParser(&ic); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	id, err := h.s.Create(c.Context(), brand, &ic)
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

func (h *ImageHandler) UpdateImage(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var iu transfer.ImageUpdate
	if err := c.BodyParser(&iu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.UpdateMetadata(c.Context(), brand, id, &iu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *ImageHandler) RemoveImage(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.Remove(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove image",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

// RefreshIngest enqueues a background sync of the field-upload feed.
func (h *ImageHandler) RefreshIngest(c *fiber.Ctx) error {
	brand := GetBrand(c)

	err := queue.EnqueueIngestSync(h.AsynqClient, queue.IngestSyncPayload{Brand: brand})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling ingest sync",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Ingest sync scheduled",
	})
}
