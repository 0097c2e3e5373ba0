package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
)

// maxResponseBody caps how much of a webhook reply is kept in memory.
const maxResponseBody = 1 << 20

// Client is a net/http backed transport for webhook posts.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Transport = (*Client)(nil)

// New creates a transport whose requests give up after timeout.
// A zero timeout means no limit.
func New(timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Post sends body to url and returns the status code and response body.
func (c *Client) Post(ctx context.Context, url string, body []byte, headers model.HeaderSet) (*model.DeliveryResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug(ctx, "webhook responded", "status", resp.StatusCode, "duration", time.Since(start))
	}

	return &model.DeliveryResult{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}
