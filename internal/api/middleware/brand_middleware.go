package middleware

import (
	"log"

	config "github.com/cryptocreeper94-sudo/paintpros-sub000/configs"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type BrandMiddleware struct {
	cfg config.Config
}

func NewBrandMiddleware(cfg config.Config) *BrandMiddleware {
	return &BrandMiddleware{cfg: cfg}
}

// BrandMiddleware resolves the acting brand from the signed cookie issued by
// the auth collaborator. Every record in every collection is namespaced by
// this brand.
func (m *BrandMiddleware) BrandMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing brand cookie",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})

			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if !m.knownBrand(claims.Brand) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown brand",
			})
		}

		c.Locals("brand", claims.Brand)
		return c.Next()
	}
}

func (m *BrandMiddleware) knownBrand(brand string) bool {
	for _, b := range m.cfg.Brands {
		if b == brand {
			return true
		}
	}
	return false
}
