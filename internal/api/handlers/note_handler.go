package handlers

import (
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type NoteHandler struct {
	s service.NoteService
}

func NewNoteHandler(service service.NoteService) *NoteHandler {
	return &NoteHandler{s: service}
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	brand := GetBrand(c)

	notes, err := h.s.List(c.Context(), brand)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list notes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notes)
}

func (h *NoteHandler) AddNote(c *fiber.Ctx) error {
	brand := GetBrand(c)

	var nc transfer.NoteCreation
	if err := c.BodyParser(&nc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	id, err := h.s.Add(c.Context(), brand, &nc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id": id,
	})
}

func (h *NoteHandler) RemoveNote(c *fiber.Ctx) error {
	brand := GetBrand(c)
	id := c.Query("id")

	found, err := h.s.Remove(c.Context(), brand, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove note",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found": found,
	})
}
