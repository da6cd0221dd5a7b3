package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	cfg "github.com/cryptocreeper94-sudo/paintpros-sub000/configs"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/h2non/filetype"
)

// sniffBytes is how much of each object is fetched for type detection.
const sniffBytes = 262

// IngestService merges field-uploaded images into the image registry view.
// Objects live under <prefix>/<brand>/ in the R2 bucket; the merged assets
// carry the field- id prefix so the UI can show provenance. The feed is a
// best-effort read: a failed sync keeps the previous cache, so the registry
// degrades to "no extra images" rather than blocking.
type IngestService interface {
	Sync(ctx context.Context) error
	SyncBrand(ctx context.Context, brand string) error
	Cached(brand string) []models.ImageAsset
}

type ingestService struct {
	config cfg.Config
	r2     *R2Service

	mu    sync.RWMutex
	cache map[string][]models.ImageAsset
}

func NewIngestService(cfg cfg.Config, r2 *R2Service) IngestService {
	return &ingestService{
		config: cfg,
		r2:     r2,
		cache:  make(map[string][]models.ImageAsset),
	}
}

func (s *ingestService) Sync(ctx context.Context) error {
	for _, brand := range s.config.Brands {
		if err := s.SyncBrand(ctx, brand); err != nil {
			slog.Info(fmt.Sprintf("ingest sync failed for %s: %v", brand, err))
		}
	}
	return nil
}

func (s *ingestService) SyncBrand(ctx context.Context, brand string) error {
	prefix := s.config.IngestPrefix + "/" + brand + "/"

	keys, err := s.r2.ListKeys(ctx, prefix)
	if err != nil {
		return err
	}

	var assets []models.ImageAsset
	for key, modified := range keys {
		head, err := s.r2.Head(ctx, key, sniffBytes)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		if !filetype.IsImage(head) {
			continue
		}

		assets = append(assets, models.ImageAsset{
			ID:          ingestedID(key, prefix),
			Brand:       brand,
			URL:         s.config.IngestPublicURL + "/" + key,
			Description: strings.TrimPrefix(key, prefix),
			Subject:     models.SubjectGeneral,
			Style:       models.StyleActionShot,
			Season:      models.SeasonAllYear,
			Quality:     3,
			CreatedAt:   time.Unix(modified, 0),
		})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	s.mu.Lock()
	s.cache[brand] = assets
	s.mu.Unlock()
	return nil
}

func (s *ingestService) Cached(brand string) []models.ImageAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[brand]
}

func ingestedID(key, prefix string) string {
	name := strings.TrimPrefix(key, prefix)
	return models.IngestedIDPrefix + strings.ReplaceAll(name, "/", "-")
}
