package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
)

// Config holds invoker settings.
type Config struct {
	// BaseURL is the upstream admin API base, without trailing slash.
	BaseURL string
	// Token is the statically configured bearer token. Takes priority over
	// TokenFile.
	Token string
	// TokenFile is the path of a persisted token, used when Token is empty.
	TokenFile string
	// Timeout bounds each dispatched request.
	Timeout time.Duration
}

// Invoker dispatches built requests against the upstream admin API. Each
// invocation is independent: no queueing, no deduplication, no retry.
type Invoker struct {
	cfg    Config
	client *http.Client
	logger *logger.Logger
}

// New creates an invoker.
func New(cfg Config, log *logger.Logger) *Invoker {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Invoker{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// resolveToken returns the configured token, falling back to the persisted
// token file. An empty result is not an error: the request proceeds
// unauthenticated.
func (i *Invoker) resolveToken() string {
	if i.cfg.Token != "" {
		return i.cfg.Token
	}
	if i.cfg.TokenFile == "" {
		return ""
	}
	data, err := os.ReadFile(i.cfg.TokenFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Invoke builds and executes exactly one request for the descriptor and
// reports a discriminated result. Remote failures (transport errors, non-2xx
// statuses) come back as failed results, never as Go errors.
func (i *Invoker) Invoke(ctx context.Context, d model.Endpoint, values map[string]string) model.InvocationResult {
	req := BuildRequest(d, values)

	var payload io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return model.InvocationResult{Message: fmt.Sprintf("encode body: %v", err)}
		}
		payload = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, i.cfg.BaseURL+req.URL, payload)
	if err != nil {
		return model.InvocationResult{Message: fmt.Sprintf("build request: %v", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := i.resolveToken(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := i.client.Do(httpReq)
	if err != nil {
		i.logger.Warn("invocation transport failure",
			zap.String("endpoint", d.ID),
			zap.Error(err),
		)
		return model.InvocationResult{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.InvocationResult{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result := model.InvocationResult{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("upstream returned %d", resp.StatusCode),
		}
		if json.Valid(raw) {
			result.Data = json.RawMessage(raw)
		} else {
			result.Raw = string(raw)
		}
		return result
	}

	result := model.InvocationResult{OK: true, Status: resp.StatusCode}
	switch {
	case len(bytes.TrimSpace(raw)) == 0:
		result.Data = json.RawMessage(`{}`)
	case json.Valid(raw):
		result.Data = json.RawMessage(raw)
	default:
		result.Data = json.RawMessage(`{}`)
		result.Raw = string(raw)
	}
	return result
}
