package handlers

import (
	"errors"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type BundleHandler struct {
	s service.BundleService
}

func NewBundleHandler(service service.BundleService) *BundleHandler {
	return &BundleHandler{s: service}
}

func (h *BundleHandler) ListBundles(c *fiber.Ctx) error {
	brand := GetBrand(c)

	bundles, err := h.s.List(c.Context(), brand)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list bundles",
		})
	}

	return c.Status(fiber.StatusOK).JSON(bundles)
}

// GenerateBundles pairs every image and message sharing a subject into new
// suggested bundles; existing pairs are left alone.
func (h *BundleHandler) GenerateBundles(c *fiber.Ctx) error {
	brand := GetBrand(c)

	created, err := h.s.Generate(c.Context(), brand)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to generate bundles",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"created": len(created),
		"bundles": created,
	})
}

func (h *BundleHandler) CreateBundle(c *fiber.Ctx) error {
	brand := GetBrand(c)

	var bc transfer.BundleCreation
	if err := c.BodyParser(&bc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	id, err := h.s.Create(c.Context(), brand, &bc)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownImage) ||
			errors.Is(err, service.ErrUnknownMessage) ||
			errors.Is(err, service.ErrDuplicatePair) ||
			errors.Is(err, service.ErrInvalidTag) {
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

func (h *BundleHandler) UpdateBundleStatus(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var su transfer.BundleStatusUpdate
	if err := c.BodyParser(&su); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.UpdateStatus(c.Context(), brand, id, models.BundleStatus(su.Status))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to update bundle status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *BundleHandler) ScheduleBundle(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var sr transfer.ScheduleRequest
	if err := c.BodyParser(&sr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	date, err := parseDate(sr.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format",
		})
	}

	decision, err := h.s.Schedule(c.Context(), brand, id, date, sr.Confirmed)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to schedule bundle",
		})
	}

	return c.Status(fiber.StatusOK).JSON(decision)
}

func (h *BundleHandler) MarkBundlePosted(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.MarkPosted(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to mark bundle posted",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *BundleHandler) ToggleAdType(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.ToggleAdType(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to toggle post type",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *BundleHandler) AttachMetrics(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var m models.PerformanceMetrics
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.AttachMetrics(c.Context(), brand, id, m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to attach metrics",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *BundleHandler) RemoveBundle(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.Remove(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove bundle",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}
