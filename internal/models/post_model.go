package models

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
)

type PostKind string

const (
	PostKindEvergreen PostKind = "evergreen"
	PostKindSeasonal  PostKind = "seasonal"
)

type PostCategory string

const (
	CategoryInterior   PostCategory = "interior"
	CategoryExterior   PostCategory = "exterior"
	CategoryCommercial PostCategory = "commercial"
	CategoryCabinets   PostCategory = "cabinets"
	CategoryDoors      PostCategory = "doors"
	CategoryTrim       PostCategory = "trim"
	CategoryDecks      PostCategory = "decks"
	CategoryGeneral    PostCategory = "general"
)

var PostCategories = []PostCategory{
	CategoryInterior, CategoryExterior, CategoryCommercial, CategoryCabinets,
	CategoryDoors, CategoryTrim, CategoryDecks, CategoryGeneral,
}

// ScheduledPost is a standalone calendar item that does not pass through the
// bundle pipeline. Created as a draft, scheduled with a date (stamping
// LastUsed to that date), marked posted (stamping LastUsed to the actual post
// time). Deletable at any stage.
type ScheduledPost struct {
	ID            string       `json:"id"`
	Brand         string       `json:"brand"`
	Content       string       `json:"content"`
	Platform      Platform     `json:"platform"`
	Kind          PostKind     `json:"type"`
	Category      PostCategory `json:"category"`
	ImageURL      string       `json:"image_url,omitempty"`
	Status        PostStatus   `json:"status"`
	ScheduledDate *time.Time   `json:"scheduled_date,omitempty"`
	LastUsed      *time.Time   `json:"last_used,omitempty"`
	ClaimedBy     string       `json:"claimed_by,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
