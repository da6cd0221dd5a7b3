package transfer

type MessageCreation struct {
	Content     string   `json:"content"`
	Subject     string   `json:"subject"`
	Tone        string   `json:"tone"`
	CTA         string   `json:"cta"`
	Platform    string   `json:"platform"`
	ContentType string   `json:"content_type"`
	Hashtags    []string `json:"hashtags"`
}

type MessageUpdate struct {
	Content     *string   `json:"content"`
	Subject     *string   `json:"subject"`
	Tone        *string   `json:"tone"`
	CTA         *string   `json:"cta"`
	Platform    *string   `json:"platform"`
	ContentType *string   `json:"content_type"`
	Hashtags    *[]string `json:"hashtags"`
}
