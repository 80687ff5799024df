package repo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func redirectRule(t *testing.T) *model.Rule {
	t.Helper()
	rule, err := model.ParseRule(map[string]any{
		"name":     "r1",
		"ruleType": "Redirect",
		"pairs": []any{map[string]any{
			"source":          map[string]any{"key": "Url", "operator": "Equals", "value": "http://a"},
			"destinationType": "url",
			"destination":     "http://b",
		}},
	})
	require.NoError(t, err)
	return rule
}

// expectCall asserts the single APICall the repository makes and answers it.
func expectCall(t *testing.T, api *storage.MockRequestlyAPIIface, method, path string, query url.Values, body string) {
	api.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call *storage.APICall) (json.RawMessage, error) {
			assert.Equal(t, method, call.Method)
			assert.Equal(t, path, call.Path)
			if len(query) == 0 {
				assert.Empty(t, call.Query)
			} else {
				assert.Equal(t, query, call.Query)
			}
			if body == "" {
				assert.Nil(t, call.Body)
			} else {
				data, err := json.Marshal(call.Body)
				require.NoError(t, err)
				assert.JSONEq(t, body, string(data))
			}
			return json.RawMessage(`{"ok":true}`), nil
		})
}

const redirectBody = `{
	"name": "r1",
	"objectType": "rule",
	"status": "Active",
	"ruleType": "Redirect",
	"pairs": [{
		"source": {"key": "Url", "operator": "Equals", "value": "http://a"},
		"destinationType": "url",
		"destination": "http://b"
	}]
}`

func TestRuleRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodPost, "/rules", nil, redirectBody)

		got, err := NewRuleRepoImpl(api).SaveRule(ctx, redirectRule(t))
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(got))
	})

	t.Run("update escapes id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodPut, "/rules/Redirect_1%2F2", nil, redirectBody)

		rule := redirectRule(t)
		rule.RuleID = "Redirect_1/2"
		_, err := NewRuleRepoImpl(api).UpdateRule(ctx, rule)
		require.NoError(t, err)
	})

	t.Run("update without id does no io", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)

		_, err := NewRuleRepoImpl(api).UpdateRule(ctx, redirectRule(t))
		assert.ErrorContains(t, err, "empty rule id")
	})

	t.Run("find by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodGet, "/rules/a%20b", nil, "")

		_, err := NewRuleRepoImpl(api).FindByID(ctx, "a b")
		require.NoError(t, err)
	})

	t.Run("list passes pagination through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodGet, "/rules", url.Values{"offset": {"10"}, "pageSize": {"75"}}, "")

		_, err := NewRuleRepoImpl(api).ListRulesWithPage(ctx, &model.RuleFilter{Offset: intPtr(10), PageSize: intPtr(75)})
		require.NoError(t, err)
	})

	t.Run("list without pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodGet, "/rules", nil, "")

		_, err := NewRuleRepoImpl(api).ListRulesWithPage(ctx, &model.RuleFilter{})
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodDelete, "/rules/r-1", nil, "")

		_, err := NewRuleRepoImpl(api).DeleteRule(ctx, "r-1")
		require.NoError(t, err)
	})
}

func TestGroupRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodPost, "/groups", nil, `{"name":"g","status":"Active","isFavourite":false}`)

		_, err := NewGroupRepoImpl(api).SaveGroup(ctx, &model.Group{Name: "g", Status: model.RuleStatusActive})
		require.NoError(t, err)
	})

	t.Run("list defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodGet, "/groups", url.Values{"offset": {"0"}, "pageSize": {"30"}}, "")

		_, err := NewGroupRepoImpl(api).ListGroupsWithPage(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("update keeps id out of body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodPut, "/groups/g1", nil, `{"name":"g","status":"Inactive","isFavourite":true}`)

		_, err := NewGroupRepoImpl(api).UpdateGroup(ctx, &model.Group{
			ID: "g1", Name: "g", Status: model.RuleStatusInactive, IsFavourite: true,
		})
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := storage.NewMockRequestlyAPIIface(ctrl)
		expectCall(t, api, http.MethodDelete, "/groups/g1", nil, "")

		_, err := NewGroupRepoImpl(api).DeleteGroup(ctx, "g1")
		require.NoError(t, err)
	})
}
