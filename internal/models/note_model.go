package models

import "time"

// TeamNote is a short message left for the other people working the same
// brand's content queue.
type TeamNote struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
