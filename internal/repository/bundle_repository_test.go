package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(store.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx,
		models.ContentBundle{ID: "b1", Brand: "npp", ImageID: "i1", MessageID: "m1", Status: models.BundleStatusSuggested, CreatedAt: time.Now()},
		models.ContentBundle{ID: "b2", Brand: "lumepaint", ImageID: "i2", MessageID: "m2", Status: models.BundleStatusSuggested, CreatedAt: time.Now()},
	))

	npp, err := repo.ListByBrand(ctx, "npp")
	require.NoError(t, err)
	require.Len(t, npp, 1)
	assert.Equal(t, "b1", npp[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBundleRepository_GetByIDMissingIsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(store.NewMemoryStore())

	bundle, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestBundleRepository_UpdateMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(store.NewMemoryStore())

	found, err := repo.Update(ctx, "nope", func(b *models.ContentBundle) {
		b.Status = models.BundleStatusApproved
	})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBundleRepository_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleRepository(store.NewMemoryStore())

	require.NoError(t, repo.Insert(ctx, models.ContentBundle{
		ID: "b1", Brand: "npp", ImageID: "i1", MessageID: "m1",
		Status: models.BundleStatusSuggested,
	}))

	found, err := repo.Update(ctx, "b1", func(b *models.ContentBundle) {
		b.Status = models.BundleStatusApproved
	})
	require.NoError(t, err)
	require.True(t, found)

	bundle, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, models.BundleStatusApproved, bundle.Status)
}
