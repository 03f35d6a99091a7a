package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Client submits generated document bundles to a downstream FHIR endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a new Client for the given endpoint
func New(endpoint string, log zerolog.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: retryClient.StandardClient(),
		log:        log,
	}
}

// SubmitBundle posts one document bundle to the endpoint
func (c *Client) SubmitBundle(ctx context.Context, bundle map[string]any) error {
	body, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/fhir+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit bundle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("endpoint rejected bundle: %s", resp.Status)
	}

	c.log.Debug().
		Str("endpoint", c.endpoint).
		Str("status", resp.Status).
		Msg("Submitted bundle")

	return nil
}
