package slack

import (
	"context"
	"net/http"

	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
)

// Webhook is a Slack incoming-webhook notifier.
type Webhook struct {
	transport ports.Transport
	logger    ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a notifier that posts through transport.
func NewWebhook(transport ports.Transport, logger ports.Logger) *Webhook {
	return &Webhook{
		transport: transport,
		logger:    logger,
	}
}

// Send posts payload to destination once. Any status other than 200 is
// returned as a *DeliveryError; transport errors are returned as is.
func (w *Webhook) Send(ctx context.Context, destination string, payload []byte, headers model.HeaderSet) (*model.DeliveryResult, error) {
	w.logger.Info(ctx, "sending slack message", "payload", string(payload))

	result, err := w.transport.Post(ctx, destination, payload, headers)
	if err != nil {
		return nil, err
	}

	if result.StatusCode != http.StatusOK {
		derr := newDeliveryError(result.StatusCode, result.Body)
		w.logger.Error(ctx, "slack message failed to send", "status", result.StatusCode, "message", derr.Message)
		return nil, derr
	}

	return result, nil
}
