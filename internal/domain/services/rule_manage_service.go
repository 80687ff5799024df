package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"requestly_mcp_server/internal/domain/iface"
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/infra/repo"
)

var (
	ErrRuleIDRequired  = errors.New("ruleId is required")
	ErrGroupIDRequired = errors.New("id is required")
)

type RuleManageService struct {
	ruleRepo repo.RuleRepositoryIface
}

var _ iface.RuleService = (*RuleManageService)(nil)

func NewRuleManageService(ruleRepo repo.RuleRepositoryIface) *RuleManageService {
	return &RuleManageService{
		ruleRepo: ruleRepo,
	}
}

// CreateRule 创建规则；rule 必须已经过 model.ParseRule 校验
func (s *RuleManageService) CreateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error) {
	rule.Status = rule.Status.OrDefault()

	data, err := s.ruleRepo.SaveRule(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to save rule to repository: %w", err)
	}
	return data, nil
}

// UpdateRule 更新规则。ruleType 不能通过更新改变，换类型需要删除后重建
func (s *RuleManageService) UpdateRule(ctx context.Context, rule *model.Rule) (json.RawMessage, error) {
	if rule.RuleID == "" {
		return nil, ErrRuleIDRequired
	}
	rule.Status = rule.Status.OrDefault()

	data, err := s.ruleRepo.UpdateRule(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to update rule %s in repository: %w", rule.RuleID, err)
	}
	return data, nil
}

// GetRules 有 ruleId 时查单条并忽略分页参数，否则分页列出。pageSize 限制在 1..75
func (s *RuleManageService) GetRules(ctx context.Context, filter *model.RuleFilter) (json.RawMessage, error) {
	if filter == nil {
		filter = &model.RuleFilter{}
	}
	if err := model.ValidateStruct(filter); err != nil {
		return nil, err
	}

	var (
		data json.RawMessage
		err  error
	)
	if filter.RuleID != "" {
		data, err = s.ruleRepo.FindByID(ctx, filter.RuleID)
	} else {
		data, err = s.ruleRepo.ListRulesWithPage(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rules from repository: %w", err)
	}
	return data, nil
}

func (s *RuleManageService) DeleteRule(ctx context.Context, ruleID string) (json.RawMessage, error) {
	if ruleID == "" {
		return nil, ErrRuleIDRequired
	}

	data, err := s.ruleRepo.DeleteRule(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete rule %s from repository: %w", ruleID, err)
	}
	return data, nil
}
