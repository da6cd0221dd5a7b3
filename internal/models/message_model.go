package models

import "time"

type MessageTemplate struct {
	ID          string       `json:"id"`
	Brand       string       `json:"brand"`
	Content     string       `json:"content"`
	Subject     Subject      `json:"subject"`
	Tone        Tone         `json:"tone"`
	CTA         CallToAction `json:"cta"`
	Platform    Platform     `json:"platform"` // "all" means every platform
	ContentType string       `json:"content_type,omitempty"`
	Hashtags    []string     `json:"hashtags"`
	LastUsed    *time.Time   `json:"last_used,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// CaptionLimit resolves the caption length bound the template must respect.
func (m MessageTemplate) CaptionLimit() (int, bool) {
	return CaptionLimit(m.Platform)
}
