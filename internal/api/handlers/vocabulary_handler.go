package handlers

import (
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/gofiber/fiber/v2"
)

type VocabularyHandler struct{}

func NewVocabularyHandler() *VocabularyHandler {
	return &VocabularyHandler{}
}

// GetVocabulary returns the closed tag sets and the per-platform caption
// limits so clients render selects without hardcoding them. The "all" limit
// is resolved here, not client-side.
func (h *VocabularyHandler) GetVocabulary(c *fiber.Ctx) error {
	allLimit, _ := models.CaptionLimit(models.PlatformAll)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subjects":        models.Subjects,
		"subject_labels":  models.SubjectLabels,
		"styles":          models.Styles,
		"seasons":         models.Seasons,
		"tones":           models.Tones,
		"ctas":            models.CallToActions,
		"platforms":       models.Platforms,
		"categories":      models.PostCategories,
		"caption_limits":  models.CaptionLimits,
		"all_caption_max": allLimit,
	})
}
