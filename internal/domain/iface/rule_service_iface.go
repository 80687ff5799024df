package iface

import (
	"context"
	"encoding/json"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
)

// RuleService 规则服务接口；返回远端原始 JSON
type RuleService interface {
	// CreateRule 创建规则
	CreateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error)
	// UpdateRule 更新规则，rule.RuleID 必填
	UpdateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error)
	// GetRules 按 ruleId 查询单条，否则分页列出
	GetRules(ctx context.Context, filter *model.RuleFilter) (json.RawMessage, error)
	DeleteRule(ctx context.Context, ruleID string) (json.RawMessage, error)
}

// GroupService 分组服务接口
type GroupService interface {
	CreateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error)
	UpdateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error)
	GetGroups(ctx context.Context, filter *model.GroupFilter) (json.RawMessage, error)
	DeleteGroup(ctx context.Context, groupID string) (json.RawMessage, error)
}
