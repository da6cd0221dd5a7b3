package models

import (
	"strings"
	"time"
)

// IngestedIDPrefix marks image assets merged in from the field-upload feed.
// The prefix is provenance only; matching treats ingested assets like any
// other image.
const IngestedIDPrefix = "field-"

type ImageAsset struct {
	ID          string     `json:"id"`
	Brand       string     `json:"brand"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	Subject     Subject    `json:"subject"`
	Style       Style      `json:"style"`
	Season      Season     `json:"season"`
	Quality     int        `json:"quality"` // 1..5
	Tags        []string   `json:"tags"`    // informational only, not used in matching
	LastUsed    *time.Time `json:"last_used,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i ImageAsset) Ingested() bool {
	return strings.HasPrefix(i.ID, IngestedIDPrefix)
}
