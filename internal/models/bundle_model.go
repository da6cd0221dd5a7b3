package models

import "time"

type BundleStatus string

const (
	BundleStatusSuggested   BundleStatus = "suggested"
	BundleStatusCirculating BundleStatus = "circulating"
	BundleStatusApproved    BundleStatus = "approved"
	BundleStatusScheduled   BundleStatus = "scheduled"
	BundleStatusPosted      BundleStatus = "posted"
	BundleStatusRemoved     BundleStatus = "removed"
)

type PostType string

const (
	PostTypeOrganic PostType = "organic"
	PostTypePaidAd  PostType = "paid_ad"
)

// ContentBundle pairs one image with one message template. At most one bundle
// exists per (image, message) pair per brand; the matcher never duplicates an
// existing pair.
type ContentBundle struct {
	ID            string               `json:"id"`
	Brand         string               `json:"brand"`
	ImageID       string               `json:"image_id"`
	MessageID     string               `json:"message_id"`
	Status        BundleStatus         `json:"status"`
	Platform      Platform             `json:"platform"`
	PostType      PostType             `json:"post_type"`
	ScheduledDate *time.Time           `json:"scheduled_date,omitempty"`
	PostedAt      *time.Time           `json:"posted_at,omitempty"`
	Metrics       *PerformanceMetrics `json:"metrics,omitempty"` // nil means not yet reported
	CreatedAt     time.Time           `json:"created_at"`
}

// PerformanceMetrics is human-entered engagement data for a posted bundle.
// A nil record means "not yet reported"; an all-zero record means "reported,
// zero engagement". The two are never conflated.
type PerformanceMetrics struct {
	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
	Clicks      int `json:"clicks"`
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Saves       int `json:"saves"`
	Leads       int `json:"leads"`
	Conversions int `json:"conversions"`

	// Spend and Revenue apply only when the bundle's PostType is paid_ad.
	Spend   float64 `json:"spend,omitempty"`
	Revenue float64 `json:"revenue,omitempty"`
}
