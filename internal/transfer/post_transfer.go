package transfer

type PostCreation struct {
	Content  string `json:"content"`
	Platform string `json:"platform"`
	Kind     string `json:"type"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type PostUpdate struct {
	Content  *string `json:"content"`
	Platform *string `json:"platform"`
	Kind     *string `json:"type"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

type PostClaim struct {
	Name string `json:"name"`
}
