package handlers

import (
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(service service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

// GetWeek returns seven day buckets starting at week_start. Clients navigate
// by requesting week_start ± 7 days.
func (h *CalendarHandler) GetWeek(c *fiber.Ctx) error {
	brand := GetBrand(c)

	weekStart, err := parseDate(c.Query("week_start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid week_start date",
		})
	}

	days, err := h.s.Week(c.Context(), brand, weekStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to build calendar",
		})
	}

	return c.Status(fiber.StatusOK).JSON(days)
}
