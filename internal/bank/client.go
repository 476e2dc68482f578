// Package bank is the typed client for the upstream banking/verification API.
package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
)

// Config holds upstream client settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the upstream API. Read operations fail soft: when the
// response cannot be fetched or does not match the expected shape, the caller
// receives the last-known-good value (or an empty one) and a warning is
// logged, never an error the dashboard would surface to operators as a crash.
type Client struct {
	cfg    Config
	client *http.Client
	logger *logger.Logger

	mu            sync.RWMutex
	lastKnownGood []model.RawConversation
}

// New creates an upstream client.
func New(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// ListConversations fetches raw conversation records. On any failure it
// returns the last successfully fetched list (empty on the first call).
func (c *Client) ListConversations(ctx context.Context) []model.RawConversation {
	var records []model.RawConversation
	if err := c.getJSON(ctx, "/admin/conversations", &records); err != nil {
		c.logger.Warn("conversation fetch failed, serving last known good",
			zap.Error(err),
		)
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.lastKnownGood
	}

	c.mu.Lock()
	c.lastKnownGood = records
	c.mu.Unlock()
	return records
}

// getJSON performs a GET, unwraps the response envelope and decodes the
// payload into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: upstream returned %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	payload, err := UnwrapEnvelope(raw)
	if err != nil {
		return fmt.Errorf("unwrap %s: %w", path, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
