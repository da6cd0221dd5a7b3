package service

import (
	"context"
	"testing"
	"time"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIngest struct {
	assets map[string][]models.ImageAsset
}

func (s *stubIngest) Sync(ctx context.Context) error                    { return nil }
func (s *stubIngest) SyncBrand(ctx context.Context, brand string) error { return nil }
func (s *stubIngest) Cached(brand string) []models.ImageAsset {
	return s.assets[brand]
}

type bundleFixture struct {
	ctx     context.Context
	images  repository.ImageRepository
	msgs    repository.MessageRepository
	bundles repository.BundleRepository
	ingest  *stubIngest
	svc     BundleService
}

func newBundleFixture(t *testing.T) *bundleFixture {
	t.Helper()
	st := store.NewMemoryStore()
	f := &bundleFixture{
		ctx:     context.Background(),
		images:  repository.NewImageRepository(st),
		msgs:    repository.NewMessageRepository(st),
		bundles: repository.NewBundleRepository(st),
		ingest:  &stubIngest{assets: make(map[string][]models.ImageAsset)},
	}
	f.svc = NewBundleService(f.bundles, f.images, f.msgs, f.ingest)
	return f
}

func (f *bundleFixture) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, f.images.Insert(f.ctx, models.ImageAsset{
		ID: "I1", Brand: "npp", URL: "https://example.com/cabinets.jpg",
		Subject: models.SubjectCabinetWork, Style: models.StyleFinishedResult,
		Season: models.SeasonAllYear, Quality: 5, CreatedAt: time.Now(),
	}))
	require.NoError(t, f.msgs.Insert(f.ctx, models.MessageTemplate{
		ID: "M1", Brand: "npp", Content: "Fresh cabinets, fresh kitchen.",
		Subject: models.SubjectCabinetWork, Tone: models.ToneFriendly,
		CTA: models.CTAGetQuote, Platform: models.PlatformInstagram,
		CreatedAt: time.Now(),
	}))
}

func TestGenerate_PairsAndIsIdempotent(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "I1", created[0].ImageID)
	assert.Equal(t, "M1", created[0].MessageID)
	assert.Equal(t, models.BundleStatusSuggested, created[0].Status)
	assert.Equal(t, models.PlatformInstagram, created[0].Platform)

	again, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	assert.Empty(t, again)

	all, err := f.bundles.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGenerate_IncludesIngestedImages(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)
	f.ingest.assets["npp"] = []models.ImageAsset{{
		ID: "field-kitchen.jpg", Brand: "npp",
		Subject: models.SubjectCabinetWork, Style: models.StyleActionShot,
		Season: models.SeasonAllYear, Quality: 3,
	}}

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestCreate_ValidatesReferences(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	_, err := f.svc.Create(f.ctx, "npp", &transfer.BundleCreation{ImageID: "ghost", MessageID: "M1"})
	assert.ErrorIs(t, err, ErrUnknownImage)

	_, err = f.svc.Create(f.ctx, "npp", &transfer.BundleCreation{ImageID: "I1", MessageID: "ghost"})
	assert.ErrorIs(t, err, ErrUnknownMessage)

	id, err := f.svc.Create(f.ctx, "npp", &transfer.BundleCreation{ImageID: "I1", MessageID: "M1"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = f.svc.Create(f.ctx, "npp", &transfer.BundleCreation{ImageID: "I1", MessageID: "M1"})
	assert.ErrorIs(t, err, ErrDuplicatePair)
}

// Mirrors the everyday flow: match, schedule while never used, then try to
// reuse the same message inside the window.
func TestSchedule_FreshThenDeferredThenConfirmed(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	require.Len(t, created, 1)
	bundleID := created[0].ID

	firstDate := time.Now().AddDate(0, 0, 2)
	decision, err := f.svc.Schedule(f.ctx, "npp", bundleID, firstDate, false)
	require.NoError(t, err)
	assert.True(t, decision.Found)
	assert.False(t, decision.Deferred)
	assert.True(t, decision.Committed, "never-used content schedules immediately")

	msg, err := f.msgs.GetByID(f.ctx, "M1")
	require.NoError(t, err)
	require.NotNil(t, msg.LastUsed)
	assert.True(t, msg.LastUsed.Equal(firstDate))

	// second bundle reusing the same message within the window
	require.NoError(t, f.images.Insert(f.ctx, models.ImageAsset{
		ID: "I2", Brand: "npp", URL: "https://example.com/more-cabinets.jpg",
		Subject: models.SubjectCabinetWork, Style: models.StyleDetailCloseup,
		Season: models.SeasonAllYear, Quality: 4, CreatedAt: time.Now(),
	}))
	more, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	require.Len(t, more, 1)
	secondID := more[0].ID

	secondDate := time.Now().AddDate(0, 0, 9)
	decision, err = f.svc.Schedule(f.ctx, "npp", secondID, secondDate, false)
	require.NoError(t, err)
	assert.True(t, decision.Found)
	assert.True(t, decision.Deferred, "recent reuse must ask for confirmation")
	assert.False(t, decision.Committed)

	// the intent is preserved: repeating with confirmed commits unconditionally
	decision, err = f.svc.Schedule(f.ctx, "npp", secondID, secondDate, true)
	require.NoError(t, err)
	assert.True(t, decision.Committed)

	msg, err = f.msgs.GetByID(f.ctx, "M1")
	require.NoError(t, err)
	require.NotNil(t, msg.LastUsed)
	assert.True(t, msg.LastUsed.Equal(secondDate), "confirmation updates the reuse stamp")

	second, err := f.bundles.GetByID(f.ctx, secondID)
	require.NoError(t, err)
	assert.Equal(t, models.BundleStatusScheduled, second.Status)
	require.NotNil(t, second.ScheduledDate)
}

func TestSchedule_MissingBundleIsNoOp(t *testing.T) {
	f := newBundleFixture(t)

	decision, err := f.svc.Schedule(f.ctx, "npp", "ghost", time.Now(), false)
	require.NoError(t, err)
	assert.False(t, decision.Found)
	assert.False(t, decision.Committed)
}

func TestUpdateStatus_TerminalRules(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	ok, err := f.svc.UpdateStatus(f.ctx, "npp", id, models.BundleStatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.Remove(f.ctx, "npp", id)
	require.NoError(t, err)
	assert.True(t, ok)

	// re-removal is idempotent, everything else is refused
	ok, err = f.svc.Remove(f.ctx, "npp", id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.UpdateStatus(f.ctx, "npp", id, models.BundleStatusApproved)
	require.NoError(t, err)
	assert.False(t, ok)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.BundleStatusRemoved, bundle.Status)
}

func TestMarkPosted_SetsPostedAt(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	ok, err := f.svc.MarkPosted(f.ctx, "npp", id)
	require.NoError(t, err)
	require.True(t, ok)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.BundleStatusPosted, bundle.Status)
	assert.NotNil(t, bundle.PostedAt)
}

func TestAttachMetrics_OnlyOncePostedAndOverwrites(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	ok, err := f.svc.AttachMetrics(f.ctx, "npp", id, models.PerformanceMetrics{Likes: 3})
	require.NoError(t, err)
	assert.False(t, ok, "metrics are meaningless before posting")

	_, err = f.svc.MarkPosted(f.ctx, "npp", id)
	require.NoError(t, err)

	ok, err = f.svc.AttachMetrics(f.ctx, "npp", id, models.PerformanceMetrics{Impressions: 100, Likes: 3})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.AttachMetrics(f.ctx, "npp", id, models.PerformanceMetrics{Impressions: 250, Likes: 9})
	require.NoError(t, err)
	assert.True(t, ok)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, bundle.Metrics)
	assert.Equal(t, 250, bundle.Metrics.Impressions, "second report replaces the first")
	assert.Equal(t, 9, bundle.Metrics.Likes)
}

func TestAttachMetrics_ZeroReportIsDistinctFromUnreported(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	_, err = f.svc.MarkPosted(f.ctx, "npp", id)
	require.NoError(t, err)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Nil(t, bundle.Metrics, "not yet reported")

	ok, err := f.svc.AttachMetrics(f.ctx, "npp", id, models.PerformanceMetrics{})
	require.NoError(t, err)
	require.True(t, ok)

	bundle, err = f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, bundle.Metrics, "reported with zero engagement")
	assert.Zero(t, bundle.Metrics.Impressions)
}

func TestAttachMetrics_SpendOnlyForPaidAds(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	_, err = f.svc.MarkPosted(f.ctx, "npp", id)
	require.NoError(t, err)

	ok, err := f.svc.AttachMetrics(f.ctx, "npp", id, models.PerformanceMetrics{Clicks: 4, Spend: 25.50, Revenue: 300})
	require.NoError(t, err)
	require.True(t, ok)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Zero(t, bundle.Metrics.Spend, "organic bundles carry no spend")
	assert.Zero(t, bundle.Metrics.Revenue)
}

func TestToggleAdType(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	ok, err := f.svc.ToggleAdType(f.ctx, "npp", id)
	require.NoError(t, err)
	require.True(t, ok)

	bundle, err := f.bundles.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.PostTypePaidAd, bundle.PostType)
	assert.Equal(t, models.BundleStatusSuggested, bundle.Status, "toggling never changes status")

	_, err = f.svc.MarkPosted(f.ctx, "npp", id)
	require.NoError(t, err)

	ok, err = f.svc.ToggleAdType(f.ctx, "npp", id)
	require.NoError(t, err)
	assert.False(t, ok, "terminal bundles keep their post type")
}

func TestBrandIsolation(t *testing.T) {
	f := newBundleFixture(t)
	f.seed(t)

	created, err := f.svc.Generate(f.ctx, "npp")
	require.NoError(t, err)
	id := created[0].ID

	ok, err := f.svc.UpdateStatus(f.ctx, "lumepaint", id, models.BundleStatusApproved)
	require.NoError(t, err)
	assert.False(t, ok, "another brand's bundle reads as not found")

	bundles, err := f.svc.List(f.ctx, "lumepaint")
	require.NoError(t, err)
	assert.Empty(t, bundles)
}
