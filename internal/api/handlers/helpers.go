package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetBrand(c *fiber.Ctx) string {
	brand, _ := c.Locals("brand").(string)
	return brand
}

// parseDate parses a calendar date in the wire format used for scheduling.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
