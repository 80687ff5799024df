package mcp_app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"requestly_mcp_server/internal/domain/iface"
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/domain/services"
	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/internal/infra/repo"
	"requestly_mcp_server/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	APIKey   string
	Body     string
}

// fakeRequestly records every request it receives and answers with a fixed
// status and body.
type fakeRequestly struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	srv      *httptest.Server
}

func newFakeRequestly(t *testing.T, status int, body string) *fakeRequestly {
	f := &fakeRequestly{status: status, body: body}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			APIKey:   r.Header.Get("x-api-key"),
			Body:     string(data),
		})
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRequestly) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newTestController(t *testing.T, baseURL, apiKey string) *RequestlyController {
	t.Helper()
	cfg := &configs.RequestlyConfig{BaseURL: baseURL, APIKey: apiKey, Timeout: 5 * time.Second}
	recorder := metrics.NewRecorder(metrics.NewRegistry())
	api := storage.NewRequestlyAPI(cfg, storage.NewHTTPClient(cfg), recorder)

	ctrl, err := NewRequestlyController(
		services.NewRuleManageService(repo.NewRuleRepoImpl(api)),
		services.NewGroupManageService(repo.NewGroupRepoImpl(api)),
		cfg,
		recorder,
	)
	require.NoError(t, err)
	return ctrl
}

var redirectSource = map[string]any{"key": "Url", "operator": "Equals", "value": "http://a"}

func redirectArgs() map[string]any {
	return map[string]any{
		"name":     "r1",
		"ruleType": "Redirect",
		"pairs": []any{map[string]any{
			"source":          redirectSource,
			"destinationType": "url",
			"destination":     "http://b",
		}},
		"apiKey": "k",
	}
}

func TestCreateRule_EndToEnd(t *testing.T) {
	fake := newFakeRequestly(t, http.StatusOK, `{"success":true,"data":{"id":"Redirect_abc"}}`)
	ctrl := newTestController(t, fake.srv.URL+"/v1", "")

	res := ctrl.CreateRule(context.Background(), redirectArgs())
	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "{\n  \"success\": true,\n  \"data\": {\n    \"id\": \"Redirect_abc\"\n  }\n}", res.Text)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/v1/rules", reqs[0].Path)
	assert.Equal(t, "k", reqs[0].APIKey)
	assert.JSONEq(t, `{
		"name": "r1",
		"objectType": "rule",
		"status": "Active",
		"ruleType": "Redirect",
		"pairs": [{
			"source": {"key": "Url", "operator": "Equals", "value": "http://a"},
			"destinationType": "url",
			"destination": "http://b"
		}]
	}`, reqs[0].Body)
}

func TestCreateRule_GroupID(t *testing.T) {
	fake := newFakeRequestly(t, http.StatusOK, `{}`)
	ctrl := newTestController(t, fake.srv.URL, "configured")

	args := redirectArgs()
	args["groupId"] = "g1"
	args["status"] = "Inactive"
	res := ctrl.CreateRule(context.Background(), args)
	require.False(t, res.IsError, res.Text)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.Requests()[0].Body), &body))
	assert.Equal(t, "g1", body["groupId"])
	assert.Equal(t, "Inactive", body["status"])
	assert.Equal(t, "k", fake.Requests()[0].APIKey, "apiKey argument overrides the configured key")
}

func TestMissingAPIKey_NoNetwork(t *testing.T) {
	fake := newFakeRequestly(t, http.StatusOK, `{}`)
	ctrl := newTestController(t, fake.srv.URL, "")

	calls := map[string]toolFunc{
		"create_rule":  ctrl.CreateRule,
		"update_rule":  ctrl.UpdateRule,
		"get_rules":    ctrl.GetRules,
		"delete_rule":  ctrl.DeleteRule,
		"create_group": ctrl.CreateGroup,
		"update_group": ctrl.UpdateGroup,
		"get_groups":   ctrl.GetGroups,
		"delete_group": ctrl.DeleteGroup,
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			res := call(context.Background(), map[string]any{"name": "x", "ruleId": "r1", "id": "g1"})
			assert.True(t, res.IsError)
			assert.Equal(t, "Error: REQUESTLY_API_KEY environment variable is not set.", res.Text)
		})
	}
	assert.Empty(t, fake.Requests())
}

func TestRuleTools_RejectedBeforeNetwork(t *testing.T) {
	fake := newFakeRequestly(t, http.StatusOK, `{}`)
	ctrl := newTestController(t, fake.srv.URL, "k")

	delayArgs := func(delay any) map[string]any {
		return map[string]any{
			"name":     "slow",
			"ruleType": "Delay",
			"pairs":    []any{map[string]any{"source": redirectSource, "delay": delay}},
		}
	}

	tests := []struct {
		name     string
		call     toolFunc
		args     map[string]any
		wantText []string
	}{
		{
			name:     "update without ruleId",
			call:     ctrl.UpdateRule,
			args:     redirectArgs(),
			wantText: []string{"Error: ruleId is required."},
		},
		{
			name:     "update with empty ruleId and broken payload",
			call:     ctrl.UpdateRule,
			args:     map[string]any{"ruleId": "", "ruleType": "Foo"},
			wantText: []string{"Error: ruleId is required."},
		},
		{
			name:     "unknown rule type",
			call:     ctrl.CreateRule,
			args:     map[string]any{"name": "r", "ruleType": "Foo", "pairs": []any{}},
			wantText: []string{"Error creating rule: validation failed: ruleType:", `received "Foo"`},
		},
		{
			name:     "negative delay",
			call:     ctrl.CreateRule,
			args:     delayArgs("-5"),
			wantText: []string{"Error creating rule: validation failed: pairs[0].delay:"},
		},
		{
			name:     "decimal delay",
			call:     ctrl.CreateRule,
			args:     delayArgs("5.0"),
			wantText: []string{"pairs[0].delay"},
		},
		{
			name:     "pairs not an array",
			call:     ctrl.CreateRule,
			args:     map[string]any{"name": "r", "ruleType": "Cancel", "pairs": "nope"},
			wantText: []string{"Error creating rule: arguments do not match the create_rule input schema"},
		},
		{
			name:     "update with invalid pair",
			call:     ctrl.UpdateRule,
			args:     map[string]any{"ruleId": "r1", "name": "r", "ruleType": "Replace", "pairs": []any{map[string]any{"source": redirectSource, "from": "a"}}},
			wantText: []string{"Error updating rule: validation failed: pairs[0].to:"},
		},
		{
			name:     "page size above max",
			call:     ctrl.GetRules,
			args:     map[string]any{"pageSize": 76},
			wantText: []string{"Error getting rules: validation failed: pageSize:", "expected <= 75"},
		},
		{
			name:     "page size not an integer",
			call:     ctrl.GetRules,
			args:     map[string]any{"pageSize": 2.5},
			wantText: []string{"Error getting rules: validation failed: pageSize:"},
		},
		{
			name:     "delete rule without id",
			call:     ctrl.DeleteRule,
			args:     map[string]any{},
			wantText: []string{"Error: ruleId is required."},
		},
		{
			name:     "create group without name",
			call:     ctrl.CreateGroup,
			args:     map[string]any{"status": "Active"},
			wantText: []string{"Error creating group: validation failed: name:"},
		},
		{
			name:     "update group without id",
			call:     ctrl.UpdateGroup,
			args:     map[string]any{"name": "g"},
			wantText: []string{"Error: id is required."},
		},
		{
			name:     "delete group without id",
			call:     ctrl.DeleteGroup,
			args:     map[string]any{"id": ""},
			wantText: []string{"Error: id is required."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.call(context.Background(), tt.args)
			assert.True(t, res.IsError)
			for _, want := range tt.wantText {
				assert.Contains(t, res.Text, want)
			}
		})
	}
	assert.Empty(t, fake.Requests(), "validation failures must not reach the network")
}

func TestRuleTools_Requests(t *testing.T) {
	tests := []struct {
		name      string
		call      func(*RequestlyController) toolFunc
		args      map[string]any
		wantMeth  string
		wantPath  string
		wantQuery string
		wantBody  string
	}{
		{
			name:     "update rule",
			call:     func(c *RequestlyController) toolFunc { return c.UpdateRule },
			args:     map[string]any{"ruleId": "Cancel_1", "name": "r", "ruleType": "Cancel", "pairs": []any{map[string]any{"source": redirectSource}}},
			wantMeth: http.MethodPut,
			wantPath: "/rules/Cancel_1",
			wantBody: `{"name":"r","objectType":"rule","status":"Active","ruleType":"Cancel","pairs":[{"source":{"key":"Url","operator":"Equals","value":"http://a"}}]}`,
		},
		{
			name:     "get rule by id is path escaped",
			call:     func(c *RequestlyController) toolFunc { return c.GetRules },
			args:     map[string]any{"ruleId": "a/b c", "pageSize": 5},
			wantMeth: http.MethodGet,
			wantPath: "/rules/a%2Fb%20c",
		},
		{
			name:      "list rules",
			call:      func(c *RequestlyController) toolFunc { return c.GetRules },
			args:      map[string]any{"offset": 0, "pageSize": 75},
			wantMeth:  http.MethodGet,
			wantPath:  "/rules",
			wantQuery: "offset=0&pageSize=75",
		},
		{
			name:     "delete rule",
			call:     func(c *RequestlyController) toolFunc { return c.DeleteRule },
			args:     map[string]any{"ruleId": "r1"},
			wantMeth: http.MethodDelete,
			wantPath: "/rules/r1",
		},
		{
			name:     "create group defaults",
			call:     func(c *RequestlyController) toolFunc { return c.CreateGroup },
			args:     map[string]any{"name": "g"},
			wantMeth: http.MethodPost,
			wantPath: "/groups",
			wantBody: `{"name":"g","status":"Active","isFavourite":false}`,
		},
		{
			name:     "update group sends everything but id",
			call:     func(c *RequestlyController) toolFunc { return c.UpdateGroup },
			args:     map[string]any{"id": "g1", "name": "g2", "status": "Inactive", "isFavourite": true},
			wantMeth: http.MethodPut,
			wantPath: "/groups/g1",
			wantBody: `{"name":"g2","status":"Inactive","isFavourite":true}`,
		},
		{
			name:      "get groups defaults",
			call:      func(c *RequestlyController) toolFunc { return c.GetGroups },
			args:      map[string]any{},
			wantMeth:  http.MethodGet,
			wantPath:  "/groups",
			wantQuery: "offset=0&pageSize=30",
		},
		{
			name:     "delete group",
			call:     func(c *RequestlyController) toolFunc { return c.DeleteGroup },
			args:     map[string]any{"id": "g1"},
			wantMeth: http.MethodDelete,
			wantPath: "/groups/g1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeRequestly(t, http.StatusOK, `{"success":true}`)
			ctrl := newTestController(t, fake.srv.URL, "k")

			res := tt.call(ctrl)(context.Background(), tt.args)
			require.False(t, res.IsError, res.Text)

			reqs := fake.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.wantMeth, reqs[0].Method)
			assert.Equal(t, tt.wantPath, reqs[0].Path)
			assert.Equal(t, tt.wantQuery, reqs[0].RawQuery)
			assert.Equal(t, "k", reqs[0].APIKey)
			if tt.wantBody == "" {
				assert.Empty(t, reqs[0].Body)
			} else {
				assert.JSONEq(t, tt.wantBody, reqs[0].Body)
			}
		})
	}
}

func TestRemoteRejection(t *testing.T) {
	fake := newFakeRequestly(t, http.StatusBadRequest, `{"error":"invalid pairs"}`)
	ctrl := newTestController(t, fake.srv.URL, "k")

	res := ctrl.CreateRule(context.Background(), redirectArgs())
	assert.True(t, res.IsError)
	assert.Equal(t, `Failed to create rule: 400 {"error":"invalid pairs"}`, res.Text)

	res = ctrl.DeleteGroup(context.Background(), map[string]any{"id": "g1"})
	assert.Equal(t, `Failed to delete group: 400 {"error":"invalid pairs"}`, res.Text)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ctrl := newTestController(t, url, "k")
	res := ctrl.GetRules(context.Background(), map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "Error getting rules: ")
}

type panickingRuleService struct {
	iface.RuleService
}

func (panickingRuleService) CreateRule(context.Context, *model.Rule) (json.RawMessage, error) {
	panic("boom")
}

func TestPanicBecomesErrorText(t *testing.T) {
	cfg := &configs.RequestlyConfig{APIKey: "k"}
	ctrl, err := NewRequestlyController(panickingRuleService{}, nil, cfg, nil)
	require.NoError(t, err)

	res := ctrl.CreateRule(context.Background(), redirectArgs())
	assert.True(t, res.IsError)
	assert.Equal(t, "Error creating rule: internal error: boom", res.Text)
}
