// Package ghostadmin is a minimal Ghost Admin API client covering the
// settings edit endpoint.
package ghostadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-ghost-routes/internal/logging"
	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

const (
	settingsPath   = "/ghost/api/admin/settings/"
	defaultVersion = "v5.0"
)

var _ interfaces.SettingsEditor = (*Client)(nil)

// Client talks to a single Ghost site. It applies no timeout of its own;
// use WithHTTPClient to configure one.
type Client struct {
	baseURL string
	key     string
	version string
	http    *http.Client
	logger  interfaces.Logger
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithVersion sets the Accept-Version header sent with every request.
func WithVersion(version string) Option {
	return func(c *Client) {
		if v := strings.TrimSpace(version); v != "" {
			c.version = v
		}
	}
}

// WithLogger injects the logger used for request diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used to mint tokens.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns a client bound to baseURL and the id:secret admin key. The key
// is only decoded when a request is made.
func New(baseURL, key string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		key:     key,
		version: defaultVersion,
		http:    http.DefaultClient,
		logger:  logging.NoOp(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the site URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// EditSetting submits {field: value} to the settings endpoint in a single
// PUT request. Failures are returned as *APIError.
func (c *Client) EditSetting(ctx context.Context, field, value string) (*interfaces.SettingsResult, error) {
	endpoint := c.baseURL + settingsPath
	requestID := uuid.NewString()
	ctx = logging.ContextWithFields(ctx, map[string]any{
		"request_id": requestID,
		"field":      field,
	})
	logger := c.logger.WithContext(ctx)

	key, err := ParseKey(c.key)
	if err != nil {
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, Err: err}
	}
	token, err := key.Token(c.now())
	if err != nil {
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, Err: fmt.Errorf("sign token: %w", err)}
	}

	payload, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Ghost "+token)
	req.Header.Set("Accept-Version", c.version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("ghostadmin.request.start", "url", endpoint, "bytes", len(payload))
	start := c.now()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("ghostadmin.request.failed", "error", err)
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Method: http.MethodPut, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	logger.Debug("ghostadmin.request.done", "status", resp.StatusCode, "duration", c.now().Sub(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseError(http.MethodPut, endpoint, resp.StatusCode, body)
	}
	return &interfaces.SettingsResult{StatusCode: resp.StatusCode, Body: json.RawMessage(body)}, nil
}
