package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

//go:generate mockgen -source=storage_iface.go -destination=mock_storage.go -package=storage

// RequestlyAPIIface 远端 Requestly API，每次调用只发出一个 HTTP 请求
type RequestlyAPIIface interface {
	// Do sends call and returns the raw JSON response body.
	Do(ctx context.Context, call *APICall) (json.RawMessage, error)
}

// HTTPDoer is the subset of *http.Client the storage layer needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APICall describes a single request against the versioned base path.
type APICall struct {
	Method string
	// Path is relative to the base URL and already escaped, e.g. "/rules/abc".
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}
