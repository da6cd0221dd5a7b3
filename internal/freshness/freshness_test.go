package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecentlyUsed_WindowBoundary(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	inside := now.AddDate(0, 0, -27)
	outside := now.AddDate(0, 0, -29)
	exact := now.Add(-ReuseWindow)

	assert.True(t, RecentlyUsed(&inside, now), "27 days ago is inside the window")
	assert.False(t, RecentlyUsed(&outside, now), "29 days ago is outside the window")
	assert.False(t, RecentlyUsed(&exact, now), "exactly 28 days ago is not after the cutoff")
}

func TestRecentlyUsed_NeverUsed(t *testing.T) {
	assert.False(t, RecentlyUsed(nil, time.Now()))
}

func TestRecentlyUsed_FutureDate(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 3)

	// scheduling stamps LastUsed with the target date, which can be ahead
	// of the clock
	assert.True(t, RecentlyUsed(&future, now))
}
