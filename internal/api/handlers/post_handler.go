package handlers

import (
	"errors"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	brand := GetBrand(c)

	filter := service.PostFilter{
		Platform: models.Platform(c.Query("platform")),
		Kind:     models.PostKind(c.Query("type")),
		Category: models.PostCategory(c.Query("category")),
		Search:   c.Query("search"),
	}

	posts, err := h.s.List(c.Context(), brand, filter)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	brand := GetBrand(c)

	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	id, err := h.s.Create(c.Context(), brand, &pc)
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

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var pu transfer.PostUpdate
	if err := c.BodyParser(&pu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.Update(c.Context(), brand, id, &pu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
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
			"error": "Unable to schedule post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(decision)
}

func (h *PostHandler) MarkPostPosted(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.MarkPosted(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to mark post as posted",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *PostHandler) ClaimPost(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	var pc transfer.PostClaim
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	found, err := h.s.Claim(c.Context(), brand, id, pc.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to claim post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.Remove(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}
