package slack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"slackhook/internal/domain/model"
)

// payload mirrors the incoming-webhook body. Field order fixes the key order
// of the serialized object.
type payload struct {
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// BuildPayload serializes msg into the webhook wire format.
// Empty optional fields are left out of the object.
func BuildPayload(msg model.Message) ([]byte, error) {
	if msg.Text == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrInvalidArgument)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Slack link and mention syntax uses <...>; keep it readable on the wire.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload{
		Text:      msg.Text,
		Channel:   msg.Channel,
		Username:  msg.Username,
		IconEmoji: msg.Icon,
	}); err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Headers returns the request headers required by the webhook.
func Headers() model.HeaderSet {
	return model.HeaderSet{"Content-Type": "application/json"}
}
