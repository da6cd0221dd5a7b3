package service

import (
	"context"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/freshness"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/lifecycle"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/matcher"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type BundleService interface {
	List(ctx context.Context, brand string) ([]models.ContentBundle, error)
	Generate(ctx context.Context, brand string) ([]models.ContentBundle, error)
	Create(ctx context.Context, brand string, bc *transfer.BundleCreation) (string, error)
	UpdateStatus(ctx context.Context, brand, id string, to models.BundleStatus) (bool, error)
	Schedule(ctx context.Context, brand, id string, date time.Time, confirmed bool) (*transfer.ScheduleDecision, error)
	MarkPosted(ctx context.Context, brand, id string) (bool, error)
	ToggleAdType(ctx context.Context, brand, id string) (bool, error)
	AttachMetrics(ctx context.Context, brand, id string, m models.PerformanceMetrics) (bool, error)
	Remove(ctx context.Context, brand, id string) (bool, error)
}

type bundleService struct {
	br repository.BundleRepository
	ir repository.ImageRepository
	mr repository.MessageRepository
	in IngestService
}

func NewBundleService(
	br repository.BundleRepository,
	ir repository.ImageRepository,
	mr repository.MessageRepository,
	in IngestService) BundleService {
	return &bundleService{
		br: br,
		ir: ir,
		mr: mr,
		in: in,
	}
}

func (s *bundleService) List(ctx context.Context, brand string) ([]models.ContentBundle, error) {
	return s.br.ListByBrand(ctx, brand)
}

// Generate runs the matcher over the brand's images (authored plus ingested)
// and message templates. Existing pairs are skipped, so repeated runs with
// unchanged registries create nothing.
func (s *bundleService) Generate(ctx context.Context, brand string) ([]models.ContentBundle, error) {
	images, err := s.ir.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}
	images = append(images, s.in.Cached(brand)...)

	messages, err := s.mr.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}

	existing, err := s.br.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}

	created := matcher.Match(brand, images, messages, existing, time.Now())
	if len(created) == 0 {
		return nil, nil
	}

	if err := s.br.Insert(ctx, created...); err != nil {
		return nil, err
	}
	return created, nil
}

// Create builds a single bundle by hand. Unlike Generate it rejects unknown
// ids instead of skipping them.
func (s *bundleService) Create(ctx context.Context, brand string, bc *transfer.BundleCreation) (string, error) {
	img, err := s.findImage(ctx, brand, bc.ImageID)
	if err != nil {
		return "", err
	}
	if img == nil {
		return "", ErrUnknownImage
	}

	msg, err := s.mr.GetByID(ctx, bc.MessageID)
	if err != nil {
		return "", err
	}
	if msg == nil || msg.Brand != brand {
		return "", ErrUnknownMessage
	}

	existing, err := s.br.ListByBrand(ctx, brand)
	if err != nil {
		return "", err
	}
	for _, b := range existing {
		if b.ImageID == bc.ImageID && b.MessageID == bc.MessageID {
			return "", ErrDuplicatePair
		}
	}

	platform := msg.Platform
	if bc.Platform != "" {
		platform = models.Platform(bc.Platform)
		if !platform.Valid() {
			return "", ErrInvalidTag
		}
	}

	bundle := models.ContentBundle{
		ID:        "bundle-" + gonanoid.Must(12),
		Brand:     brand,
		ImageID:   bc.ImageID,
		MessageID: bc.MessageID,
		Status:    models.BundleStatusSuggested,
		Platform:  platform,
		PostType:  models.PostTypeOrganic,
		CreatedAt: time.Now(),
	}

	if err := s.br.Insert(ctx, bundle); err != nil {
		return "", err
	}
	return bundle.ID, nil
}

func (s *bundleService) UpdateStatus(ctx context.Context, brand, id string, to models.BundleStatus) (bool, error) {
	bundle, err := s.getOwned(ctx, brand, id)
	if err != nil || bundle == nil {
		return false, err
	}
	if !lifecycle.CanTransition(bundle.Status, to) {
		return false, nil
	}
	if to == models.BundleStatusScheduled {
		// a date is required; scheduling goes through Schedule
		return false, nil
	}

	now := time.Now()
	return s.br.Update(ctx, id, func(b *models.ContentBundle) {
		b.Status = to
		if to == models.BundleStatusPosted && b.PostedAt == nil {
			b.PostedAt = &now
		}
	})
}

// Schedule attaches a date to the bundle. The freshness guard checks the
// referenced message's and image's own reuse history; recent reuse defers
// the request until it is repeated with confirmed set. A committed schedule
// stamps both items' LastUsed with the new date.
func (s *bundleService) Schedule(ctx context.Context, brand, id string, date time.Time, confirmed bool) (*transfer.ScheduleDecision, error) {
	bundle, err := s.getOwned(ctx, brand, id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return &transfer.ScheduleDecision{}, nil
	}

	decision := &transfer.ScheduleDecision{Found: true}
	if !lifecycle.CanTransition(bundle.Status, models.BundleStatusScheduled) {
		return decision, nil
	}

	img, err := s.findImage(ctx, brand, bundle.ImageID)
	if err != nil {
		return nil, err
	}
	msg, err := s.mr.GetByID(ctx, bundle.MessageID)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		now := time.Now()
		recent := false
		if msg != nil && freshness.RecentlyUsed(msg.LastUsed, now) {
			recent = true
		}
		if img != nil && freshness.RecentlyUsed(img.LastUsed, now) {
			recent = true
		}
		if recent {
			decision.Deferred = true
			return decision, nil
		}
	}

	ok, err := s.br.Update(ctx, id, func(b *models.ContentBundle) {
		b.Status = models.BundleStatusScheduled
		b.ScheduledDate = &date
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return &transfer.ScheduleDecision{}, nil
	}

	if msg != nil {
		if _, err := s.mr.Update(ctx, msg.ID, func(t *models.MessageTemplate) {
			t.LastUsed = &date
		}); err != nil {
			return nil, err
		}
	}
	if img != nil && !img.Ingested() {
		if _, err := s.ir.Update(ctx, img.ID, func(a *models.ImageAsset) {
			a.LastUsed = &date
		}); err != nil {
			return nil, err
		}
	}

	decision.Committed = true
	return decision, nil
}

func (s *bundleService) MarkPosted(ctx context.Context, brand, id string) (bool, error) {
	return s.UpdateStatus(ctx, brand, id, models.BundleStatusPosted)
}

func (s *bundleService) ToggleAdType(ctx context.Context, brand, id string) (bool, error) {
	bundle, err := s.getOwned(ctx, brand, id)
	if err != nil || bundle == nil {
		return false, err
	}
	if !lifecycle.CanToggleAdType(bundle.Status) {
		return false, nil
	}

	return s.br.Update(ctx, id, func(b *models.ContentBundle) {
		if b.PostType == models.PostTypePaidAd {
			b.PostType = models.PostTypeOrganic
		} else {
			b.PostType = models.PostTypePaidAd
		}
	})
}

// AttachMetrics records human-entered engagement data on a posted bundle,
// replacing any previous record. Spend and revenue are kept only for paid
// placements.
func (s *bundleService) AttachMetrics(ctx context.Context, brand, id string, m models.PerformanceMetrics) (bool, error) {
	bundle, err := s.getOwned(ctx, brand, id)
	if err != nil || bundle == nil {
		return false, err
	}
	if !lifecycle.CanAttachMetrics(bundle.Status) {
		return false, nil
	}

	if bundle.PostType != models.PostTypePaidAd {
		m.Spend = 0
		m.Revenue = 0
	}

	return s.br.Update(ctx, id, func(b *models.ContentBundle) {
		b.Metrics = &m
	})
}

func (s *bundleService) Remove(ctx context.Context, brand, id string) (bool, error) {
	return s.UpdateStatus(ctx, brand, id, models.BundleStatusRemoved)
}

func (s *bundleService) getOwned(ctx context.Context, brand, id string) (*models.ContentBundle, error) {
	bundle, err := s.br.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bundle == nil || bundle.Brand != brand {
		return nil, nil
	}
	return bundle, nil
}

// findImage resolves an image id against the authored registry first, then
// the ingest feed cache.
func (s *bundleService) findImage(ctx context.Context, brand, id string) (*models.ImageAsset, error) {
	img, err := s.ir.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img != nil {
		if img.Brand != brand {
			return nil, nil
		}
		return img, nil
	}

	for _, a := range s.in.Cached(brand) {
		if a.ID == id {
			ingested := a
			return &ingested, nil
		}
	}
	return nil, nil
}
