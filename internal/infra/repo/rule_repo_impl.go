package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/infra/storage"
	"requestly_mcp_server/utils"
)

const rulesPath = "/rules"

// ruleRepoImpl 实现了 RuleRepositoryIface，每个方法对应一次远端调用
type ruleRepoImpl struct {
	api storage.RequestlyAPIIface
}

// 确保 ruleRepoImpl 实现了 RuleRepositoryIface 接口 (编译时检查)
var _ RuleRepositoryIface = (*ruleRepoImpl)(nil)

func NewRuleRepoImpl(api storage.RequestlyAPIIface) RuleRepositoryIface {
	return &ruleRepoImpl{api: api}
}

// SaveRule 创建规则
func (r *ruleRepoImpl) SaveRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error) {
	utils.GetLogger().Infof("creating %s rule %q", rule.RuleType, rule.Name)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodPost,
		Path:   rulesPath,
		Body:   rule.Body(),
	})
}

// UpdateRule 按 rule.RuleID 整体更新规则
func (r *ruleRepoImpl) UpdateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error) {
	if rule.RuleID == "" {
		return nil, fmt.Errorf("update rule %q: empty rule id", rule.Name)
	}
	utils.GetLogger().Infof("updating rule %s", rule.RuleID)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodPut,
		Path:   rulePath(rule.RuleID),
		Body:   rule.Body(),
	})
}

// FindByID 根据ID查询规则
func (r *ruleRepoImpl) FindByID(ctx context.Context, ruleID string) (json.RawMessage, error) {
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodGet,
		Path:   rulePath(ruleID),
	})
}

// ListRulesWithPage 列出规则并支持分页；offset/pageSize 原样透传
func (r *ruleRepoImpl) ListRulesWithPage(ctx context.Context, filter *model.RuleFilter) (json.RawMessage, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Offset != nil {
			query.Set("offset", strconv.Itoa(*filter.Offset))
		}
		if filter.PageSize != nil {
			query.Set("pageSize", strconv.Itoa(*filter.PageSize))
		}
	}
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodGet,
		Path:   rulesPath,
		Query:  query,
	})
}

// DeleteRule 删除规则
func (r *ruleRepoImpl) DeleteRule(ctx context.Context, ruleID string) (json.RawMessage, error) {
	utils.GetLogger().Infof("deleting rule %s", ruleID)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodDelete,
		Path:   rulePath(ruleID),
	})
}

func rulePath(ruleID string) string {
	return rulesPath + "/" + url.PathEscape(ruleID)
}
