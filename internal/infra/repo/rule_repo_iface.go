package repo

import (
	"context"
	"encoding/json"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
)

// RuleRepositoryIface 规则仓库，数据源是远端 Requestly API；返回原始 JSON 响应
type RuleRepositoryIface interface {
	SaveRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error)
	UpdateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error)
	FindByID(ctx context.Context, ruleID string) (json.RawMessage, error)
	ListRulesWithPage(ctx context.Context, filter *model.RuleFilter) (json.RawMessage, error)
	DeleteRule(ctx context.Context, ruleID string) (json.RawMessage, error)
}

// GroupRepositoryIface 分组仓库
type GroupRepositoryIface interface {
	SaveGroup(ctx context.Context, group *model.Group) (json.RawMessage, error)
	ListGroupsWithPage(ctx context.Context, filter *model.GroupFilter) (json.RawMessage, error)
	UpdateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error)
	DeleteGroup(ctx context.Context, groupID string) (json.RawMessage, error)
}
