package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionLimit(t *testing.T) {
	limit, ok := CaptionLimit(PlatformInstagram)
	require.True(t, ok)
	assert.Equal(t, 2200, limit)

	_, ok = CaptionLimit(Platform("myspace"))
	assert.False(t, ok)
}

func TestCaptionLimit_AllResolvesToStrictest(t *testing.T) {
	allLimit, ok := CaptionLimit(PlatformAll)
	require.True(t, ok)

	for p, limit := range CaptionLimits {
		assert.LessOrEqual(t, allLimit, limit, "all must not exceed %s", p)
	}
	assert.Equal(t, CaptionLimits[PlatformNextdoor], allLimit)
}

func TestVocabularyValidity(t *testing.T) {
	assert.True(t, SubjectCabinetWork.Valid())
	assert.False(t, Subject("wallpaper").Valid())
	assert.False(t, Subject("").Valid())

	assert.True(t, StyleBeforeAfter.Valid())
	assert.False(t, Style("collage").Valid())

	assert.True(t, SeasonAllYear.Valid())
	assert.False(t, Season("monsoon").Valid())

	assert.True(t, ToneFriendly.Valid())
	assert.False(t, Tone("sarcastic").Valid())

	assert.True(t, CTABookNow.Valid())
	assert.False(t, CallToAction("subscribe").Valid())

	assert.True(t, PlatformNextdoor.Valid())
	assert.True(t, PlatformAll.Valid())
	assert.False(t, Platform("tiktok").Valid())
}

func TestMessageTemplateCaptionLimit(t *testing.T) {
	m := MessageTemplate{Platform: PlatformAll}
	limit, ok := m.CaptionLimit()
	require.True(t, ok)
	assert.Equal(t, 1200, limit)
}

func TestImageAssetIngested(t *testing.T) {
	assert.True(t, ImageAsset{ID: "field-crew-042.jpg"}.Ingested())
	assert.False(t, ImageAsset{ID: "img-abc123"}.Ingested())
}
