package repository

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
)

type ImageRepository interface {
	List(ctx context.Context) ([]models.ImageAsset, error)
	ListByBrand(ctx context.Context, brand string) ([]models.ImageAsset, error)
	GetByID(ctx context.Context, id string) (*models.ImageAsset, error)
	Insert(ctx context.Context, assets ...models.ImageAsset) error
	Update(ctx context.Context, id string, mutate func(*models.ImageAsset)) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type imageRepository struct {
	st store.Store
}

func NewImageRepository(st store.Store) ImageRepository {
	return &imageRepository{st: st}
}

func (r *imageRepository) List(ctx context.Context) ([]models.ImageAsset, error) {
	var assets []models.ImageAsset
	if err := r.st.Read(ctx, store.KeyImages, &assets); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return assets, nil
}

func (r *imageRepository) ListByBrand(ctx context.Context, brand string) ([]models.ImageAsset, error) {
	assets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []models.ImageAsset
	for _, a := range assets {
		if a.Brand == brand {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (r *imageRepository) GetByID(ctx context.Context, id string) (*models.ImageAsset, error) {
	assets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range assets {
		if assets[i].ID == id {
			return &assets[i], nil
		}
	}
	return nil, nil
}

func (r *imageRepository) Insert(ctx context.Context, toAdd ...models.ImageAsset) error {
	assets, err := r.List(ctx)
	if err != nil {
		return err
	}

	assets = append(assets, toAdd...)
	return r.st.Write(ctx, store.KeyImages, assets)
}

func (r *imageRepository) Update(ctx context.Context, id string, mutate func(*models.ImageAsset)) (bool, error) {
	assets, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range assets {
		if assets[i].ID == id {
			mutate(&assets[i])
			return true, r.st.Write(ctx, store.KeyImages, assets)
		}
	}
	return false, nil
}

func (r *imageRepository) Remove(ctx context.Context, id string) (bool, error) {
	assets, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range assets {
		if assets[i].ID == id {
			assets = append(assets[:i], assets[i+1:]...)
			return true, r.st.Write(ctx, store.KeyImages, assets)
		}
	}
	return false, nil
}
