package slack

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidArgument is returned when a message cannot be built from the given input.
var ErrInvalidArgument = errors.New("invalid argument")

const maxErrorMessage = 256

// DeliveryError reports a webhook response other than 200 OK.
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("slack message failed to send: code = %d, message = %s", e.StatusCode, e.Message)
}

func newDeliveryError(status int, body []byte) *DeliveryError {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &DeliveryError{StatusCode: status, Message: msg}
}
