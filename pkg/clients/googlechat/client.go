package googlechat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

// maximum response bytes kept for diagnostics
const maxErrorBody = 4 << 10

// Client defines the interface for posting messages to a Google Chat space
type Client interface {
	SendMessage(ctx context.Context, payload Payload) error
}

// APIError is returned when the webhook answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google chat API error (%d): %s", e.StatusCode, e.Body)
}

type clientImpl struct {
	webhookURL string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*clientImpl)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientImpl) {
		c.httpClient = hc
	}
}

// NewClient creates a new Google Chat webhook client.
// webhookURL is a secret and is never logged or included in errors.
func NewClient(webhookURL string, opts ...Option) Client {
	c := &clientImpl{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage posts payload to the webhook once. There is no retry.
func (c *clientImpl) SendMessage(ctx context.Context, payload Payload) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", redact(err))
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error posting to google chat: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

// redact drops the request URL from transport errors so the webhook token
// cannot reach the logs
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return errors.New("invalid webhook request")
}
