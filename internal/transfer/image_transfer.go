package transfer

type ImageCreation struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Style       string   `json:"style"`
	Season      string   `json:"season"`
	Quality     int      `json:"quality"`
	Tags        []string `json:"tags"`
}

// ImageUpdate carries metadata edits; nil fields are left unchanged.
type ImageUpdate struct {
	Description *string   `json:"description"`
	Subject     *string   `json:"subject"`
	Style       *string   `json:"style"`
	Season      *string   `json:"season"`
	Quality     *int      `json:"quality"`
	Tags        *[]string `json:"tags"`
}
