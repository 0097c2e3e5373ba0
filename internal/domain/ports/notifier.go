package ports

import (
	"context"

	"slackhook/internal/domain/model"
)

// Notifier delivers a serialized payload to a webhook destination.
type Notifier interface {
	Send(ctx context.Context, destination string, payload []byte, headers model.HeaderSet) (*model.DeliveryResult, error)
}
