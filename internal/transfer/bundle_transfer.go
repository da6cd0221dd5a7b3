package transfer

type BundleCreation struct {
	ImageID   string `json:"image_id"`
	MessageID string `json:"message_id"`
	Platform  string `json:"platform"`
}

type BundleStatusUpdate struct {
	Status string `json:"status"`
}

type ScheduleRequest struct {
	Date      string `json:"date"` // 2006-01-02
	Confirmed bool   `json:"confirmed"`
}

// ScheduleDecision reports what happened to a schedule request. A deferred
// decision means the freshness guard flagged recent reuse and the caller must
// repeat the request with Confirmed set; the intent is never silently lost.
type ScheduleDecision struct {
	Found     bool `json:"found"`
	Deferred  bool `json:"deferred"`
	Committed bool `json:"committed"`
}
