// Package lifecycle holds the content bundle status machine.
package lifecycle

import "github.com/cryptocreeper94-sudo/paintpros-sub000/internal/models"

// Terminal reports whether a status accepts no further forward transitions.
// A posted bundle may still be retracted to removed and keeps accepting
// metrics edits, but its status never moves forward again.
func Terminal(s models.BundleStatus) bool {
	return s == models.BundleStatusPosted || s == models.BundleStatusRemoved
}

// CanTransition reports whether a human-triggered status change is allowed.
//
// suggested, circulating and approved interchange freely; any non-terminal
// status may move to scheduled, posted or removed. Moving straight to posted
// without scheduling stays allowed as a manual correction, matching how the
// dashboard always behaved. suggested is set only by the matcher, so nothing
// transitions back into it. removed accepts idempotent re-removal only, and
// posted accepts re-posting (no-op) or removal.
func CanTransition(from, to models.BundleStatus) bool {
	switch from {
	case models.BundleStatusRemoved:
		return to == models.BundleStatusRemoved
	case models.BundleStatusPosted:
		return to == models.BundleStatusPosted || to == models.BundleStatusRemoved
	}

	switch to {
	case models.BundleStatusSuggested:
		return from == models.BundleStatusSuggested
	case models.BundleStatusCirculating,
		models.BundleStatusApproved,
		models.BundleStatusScheduled,
		models.BundleStatusPosted,
		models.BundleStatusRemoved:
		return true
	}
	return false
}

// CanToggleAdType reports whether the organic/paid toggle is allowed; it is
// blocked only on terminal statuses and never changes the status itself.
func CanToggleAdType(s models.BundleStatus) bool {
	return !Terminal(s)
}

// CanAttachMetrics reports whether engagement metrics may be recorded.
// Metrics are meaningful only once the bundle went live.
func CanAttachMetrics(s models.BundleStatus) bool {
	return s == models.BundleStatusPosted
}
