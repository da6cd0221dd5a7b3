package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ImageService interface {
	List(ctx context.Context, brand string) ([]models.ImageAsset, error)
	Create(ctx context.Context, brand string, ic *transfer.ImageCreation) (string, error)
	UpdateMetadata(ctx context.Context, brand, id string, iu *transfer.ImageUpdate) (bool, error)
	Remove(ctx context.Context, brand, id string) (bool, error)
}

type imageService struct {
	ir repository.ImageRepository
	in IngestService
}

func NewImageService(ir repository.ImageRepository, in IngestService) ImageService {
	return &imageService{ir: ir, in: in}
}

// List returns the brand's authored assets followed by the current ingest
// feed cache. Ingested assets are view-only; they are not persisted in the
// images collection.
func (s *imageService) List(ctx context.Context, brand string) ([]models.ImageAsset, error) {
	assets, err := s.ir.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}
	return append(assets, s.in.Cached(brand)...), nil
}

func (s *imageService) Create(ctx context.Context, brand string, ic *transfer.ImageCreation) (string, error) {
	if ic == nil || ic.URL == "" {
		err := errors.New("image url cannot be empty")
		slog.Info(err.Error())
		return "", err
	}

	subject := models.Subject(ic.Subject)
	style := models.Style(ic.Style)
	season := models.Season(ic.Season)
	if !subject.Valid() || !style.Valid() || !season.Valid() {
		return "", ErrInvalidTag
	}
	if ic.Quality < 1 || ic.Quality > 5 {
		err := errors.New("quality must be between 1 and 5")
		slog.Info(err.Error())
		return "", err
	}

	asset := models.ImageAsset{
		ID:          "img-" + gonanoid.Must(12),
		Brand:       brand,
		URL:         ic.URL,
		Description: ic.Description,
		Subject:     subject,
		Style:       style,
		Season:      season,
		Quality:     ic.Quality,
		Tags:        ic.Tags,
		CreatedAt:   time.Now(),
	}

	if err := s.ir.Insert(ctx, asset); err != nil {
		return "", err
	}
	return asset.ID, nil
}

func (s *imageService) UpdateMetadata(ctx context.Context, brand, id string, iu *transfer.ImageUpdate) (bool, error) {
	existing, err := s.ir.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.Brand != brand {
		return false, nil
	}

	if iu.Subject != nil && !models.Subject(*iu.Subject).Valid() {
		return false, ErrInvalidTag
	}
	if iu.Style != nil && !models.Style(*iu.Style).Valid() {
		return false, ErrInvalidTag
	}
	if iu.Season != nil && !models.Season(*iu.Season).Valid() {
		return false, ErrInvalidTag
	}
	if iu.Quality != nil && (*iu.Quality < 1 || *iu.Quality > 5) {
		return false, errors.New("quality must be between 1 and 5")
	}

	return s.ir.Update(ctx, id, func(a *models.ImageAsset) {
		if iu.Description != nil {
			a.Description = *iu.Description
		}
		if iu.Subject != nil {
			a.Subject = models.Subject(*iu.Subject)
		}
		if iu.Style != nil {
			a.Style = models.Style(*iu.Style)
		}
		if iu.Season != nil {
			a.Season = models.Season(*iu.Season)
		}
		if iu.Quality != nil {
			a.Quality = *iu.Quality
		}
		if iu.Tags != nil {
			a.Tags = *iu.Tags
		}
	})
}

func (s *imageService) Remove(ctx context.Context, brand, id string) (bool, error) {
	existing, err := s.ir.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.Brand != brand {
		return false, nil
	}
	return s.ir.Remove(ctx, id)
}
