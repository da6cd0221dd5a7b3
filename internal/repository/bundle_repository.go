package repository

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
)

type BundleRepository interface {
	List(ctx context.Context) ([]models.ContentBundle, error)
	ListByBrand(ctx context.Context, brand string) ([]models.ContentBundle, error)
	GetByID(ctx context.Context, id string) (*models.ContentBundle, error)
	Insert(ctx context.Context, bundles ...models.ContentBundle) error
	Update(ctx context.Context, id string, mutate func(*models.ContentBundle)) (bool, error)
}

type bundleRepository struct {
	st store.Store
}

func NewBundleRepository(st store.Store) BundleRepository {
	return &bundleRepository{st: st}
}

func (r *bundleRepository) List(ctx context.Context) ([]models.ContentBundle, error) {
	var bundles []models.ContentBundle
	if err := r.st.Read(ctx, store.KeyBundles, &bundles); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return bundles, nil
}

func (r *bundleRepository) ListByBrand(ctx context.Context, brand string) ([]models.ContentBundle, error) {
	bundles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []models.ContentBundle
	for _, b := range bundles {
		if b.Brand == brand {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *bundleRepository) GetByID(ctx context.Context, id string) (*models.ContentBundle, error) {
	bundles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range bundles {
		if bundles[i].ID == id {
			return &bundles[i], nil
		}
	}
	return nil, nil
}

func (r *bundleRepository) Insert(ctx context.Context, toAdd ...models.ContentBundle) error {
	bundles, err := r.List(ctx)
	if err != nil {
		return err
	}

	bundles = append(bundles, toAdd...)
	return r.st.Write(ctx, store.KeyBundles, bundles)
}

func (r *bundleRepository) Update(ctx context.Context, id string, mutate func(*models.ContentBundle)) (bool, error) {
	bundles, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range bundles {
		if bundles[i].ID == id {
			mutate(&bundles[i])
			return true, r.st.Write(ctx, store.KeyBundles, bundles)
		}
	}
	return false, nil
}
