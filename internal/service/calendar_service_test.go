package service

import (
	"context"
	"testing"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/calendar"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarWeek_BrandScopedProjection(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	posts := repository.NewPostRepository(st)
	bundles := repository.NewBundleRepository(st)
	svc := NewCalendarService(posts, bundles)

	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	tuesday := weekStart.AddDate(0, 0, 1)
	offWeek := weekStart.AddDate(0, 0, 9)

	require.NoError(t, posts.Insert(ctx, models.ScheduledPost{
		ID: "P1", Brand: "npp", Content: "Tuesday refresh",
		Platform: models.PlatformInstagram, Status: models.PostStatusScheduled,
		ScheduledDate: &tuesday,
	}))
	require.NoError(t, posts.Insert(ctx, models.ScheduledPost{
		ID: "P2", Brand: "lumepaint", Content: "Other brand",
		Platform: models.PlatformFacebook, Status: models.PostStatusScheduled,
		ScheduledDate: &tuesday,
	}))
	require.NoError(t, bundles.Insert(ctx, models.ContentBundle{
		ID: "B1", Brand: "npp", ImageID: "I1", MessageID: "M1",
		Status: models.BundleStatusScheduled, ScheduledDate: &tuesday,
	}))
	require.NoError(t, bundles.Insert(ctx, models.ContentBundle{
		ID: "B2", Brand: "npp", ImageID: "I2", MessageID: "M2",
		Status: models.BundleStatusScheduled, ScheduledDate: &offWeek,
	}))

	week, err := svc.Week(ctx, "npp", weekStart)
	require.NoError(t, err)
	require.Len(t, week, calendar.DaysPerWeek)

	assert.Empty(t, week[0].Posts)
	require.Len(t, week[1].Posts, 1)
	assert.Equal(t, "P1", week[1].Posts[0].ID)
	require.Len(t, week[1].Bundles, 1)
	assert.Equal(t, "B1", week[1].Bundles[0].ID)

	for i := 2; i < calendar.DaysPerWeek; i++ {
		assert.Empty(t, week[i].Posts)
		assert.Empty(t, week[i].Bundles)
	}
}
