package model

// MergeRequestNote is a single note (comment) on a GitLab merge request.
type MergeRequestNote struct {
	ID     int    `json:"id"`
	Body   string `json:"body"`
	System bool   `json:"system"`
	Author struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	} `json:"author"`
}

// PublishResult reports how a comment reached GitLab. StatusCode and Body are
// the remote response passed through untouched.
type PublishResult struct {
	Action     string // "created" or "updated"
	StatusCode int
	Body       string
}

// WebhookResponse is the JSON body returned to the webhook caller.
type WebhookResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
