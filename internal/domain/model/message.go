package model

// Message is a single notification to be posted to a Slack incoming webhook.
// Only Text is required; empty overrides fall back to the webhook defaults.
type Message struct {
	Text     string
	Channel  string
	Username string
	Icon     string
}

// HeaderSet maps HTTP header names to values for one request.
type HeaderSet map[string]string

// DeliveryResult is the raw outcome of a webhook POST.
type DeliveryResult struct {
	StatusCode int
	Body       []byte
}
