package ports

import (
	"context"

	"slackhook/internal/domain/model"
)

// Transport performs a single HTTP POST and reports the raw response.
// Implementations must not interpret the status code.
type Transport interface {
	Post(ctx context.Context, url string, body []byte, headers model.HeaderSet) (*model.DeliveryResult, error)
}
