// Package freshness decides whether a content item was reused too recently to
// schedule again without an explicit confirmation.
package freshness

import "time"

// ReuseWindow is the trailing window in which a previous use counts as
// "recent".
const ReuseWindow = 28 * 24 * time.Hour

// RecentlyUsed reports whether lastUsed falls inside the trailing reuse
// window ending at now. An item that was never used is never recent.
func RecentlyUsed(lastUsed *time.Time, now time.Time) bool {
	if lastUsed == nil {
		return false
	}
	return lastUsed.After(now.Add(-ReuseWindow))
}
