// Package matcher pairs tagged images with tagged message templates into
// suggested content bundles. Subject equality is the sole join key.
package matcher

import (
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type pairKey struct {
	imageID   string
	messageID string
}

// Match produces one new suggested bundle for every image/message pair of the
// given brand that shares a Subject and is not already covered by an existing
// bundle. Re-running with the previous output included in existing yields
// nothing new. Inputs are never mutated.
func Match(brand string, images []models.ImageAsset, messages []models.MessageTemplate, existing []models.ContentBundle, now time.Time) []models.ContentBundle {
	covered := make(map[pairKey]struct{}, len(existing))
	for _, b := range existing {
		covered[pairKey{b.ImageID, b.MessageID}] = struct{}{}
	}

	var created []models.ContentBundle
	for _, img := range images {
		if img.Brand != brand {
			continue
		}
		for _, msg := range messages {
			if msg.Brand != brand || msg.Subject != img.Subject {
				continue
			}

			key := pairKey{img.ID, msg.ID}
			if _, ok := covered[key]; ok {
				continue
			}
			covered[key] = struct{}{}

			created = append(created, models.ContentBundle{
				ID:        newBundleID(),
				Brand:     brand,
				ImageID:   img.ID,
				MessageID: msg.ID,
				Status:    models.BundleStatusSuggested,
				Platform:  msg.Platform,
				PostType:  models.PostTypeOrganic,
				CreatedAt: now,
			})
		}
	}
	return created
}

func newBundleID() string {
	return "bundle-" + gonanoid.Must(12)
}
