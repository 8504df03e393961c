// Package delivery posts case packages to the outbound automation webhook.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"vehicle_acquisition/internal/infrastructure/config"
	"vehicle_acquisition/internal/usecase/interfaces"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 64 << 10
)

var ErrWebhookNotConfigured = errors.New("webhook url not configured")

// WebhookClient sends one POST per delivery. It never retries.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.IDeliveryChannel = (*WebhookClient)(nil)

// NewWebhookClient creates a client for the configured endpoint.
func NewWebhookClient(cfg config.WebhookConfig) *WebhookClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookClient{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Deliver posts record and returns the response status and (truncated) body.
func (c *WebhookClient) Deliver(ctx context.Context, record json.RawMessage) (int, []byte, error) {
	if c.url == "" {
		return 0, nil, ErrWebhookNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(record))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request to webhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
