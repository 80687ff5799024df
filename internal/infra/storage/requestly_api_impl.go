package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/utils"
)

const apiKeyHeader = "x-api-key"

// ErrMissingAPIKey is returned before any I/O when no API key is available.
var ErrMissingAPIKey = errors.New("REQUESTLY_API_KEY environment variable is not set")

// RemoteError 远端返回非 2xx，Body 原样保留
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

type apiKeyCtxKey struct{}

// ContextWithAPIKey attaches the key used for calls made with ctx.
func ContextWithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyCtxKey{}, key)
}

// APIKeyFromContext returns the key set by ContextWithAPIKey, or "".
func APIKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyCtxKey{}).(string)
	return key
}

type requestlyAPIImpl struct {
	baseURL  string
	client   HTTPDoer
	recorder *metrics.Recorder
}

var _ RequestlyAPIIface = (*requestlyAPIImpl)(nil)

// NewHTTPClient builds the client used for all remote calls.
func NewHTTPClient(c *configs.RequestlyConfig) HTTPDoer {
	return &http.Client{Timeout: c.Timeout}
}

func NewRequestlyAPI(c *configs.RequestlyConfig, client HTTPDoer, recorder *metrics.Recorder) RequestlyAPIIface {
	return &requestlyAPIImpl{
		baseURL:  c.BaseURL,
		client:   client,
		recorder: recorder,
	}
}

func (s *requestlyAPIImpl) Do(ctx context.Context, call *APICall) (json.RawMessage, error) {
	log := utils.GetLogger()

	apiKey := APIKeyFromContext(ctx)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	target := s.baseURL + call.Path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		data, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if call.Body != nil {
		req.Header.Set("content-type", "application/json")
	}
	req.Header.Set(apiKeyHeader, apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.observe(call.Method, "error", start)
		return nil, fmt.Errorf("%s %s: %w", call.Method, call.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	s.observe(call.Method, strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debugf("requestly %s %s -> %d (%s)", call.Method, call.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to parse response body as JSON: %q", truncate(string(data), 200))
	}
	return data, nil
}

func (s *requestlyAPIImpl) observe(method, status string, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveRemote(method, status, time.Since(start))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
