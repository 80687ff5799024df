package services

import (
	"context"
	"encoding/json"
	"fmt"

	"requestly_mcp_server/internal/domain/iface"
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/infra/repo"
)

type GroupManageService struct {
	groupRepo repo.GroupRepositoryIface
}

var _ iface.GroupService = (*GroupManageService)(nil)

func NewGroupManageService(groupRepo repo.GroupRepositoryIface) *GroupManageService {
	return &GroupManageService{groupRepo: groupRepo}
}

// CreateGroup 创建分组，status 默认 Active
func (s *GroupManageService) CreateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error) {
	group.Status = group.Status.OrDefault()
	if err := model.ValidateStruct(group); err != nil {
		return nil, err
	}

	data, err := s.groupRepo.SaveGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to save group to repository: %w", err)
	}
	return data, nil
}

func (s *GroupManageService) UpdateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error) {
	if group.ID == "" {
		return nil, ErrGroupIDRequired
	}
	group.Status = group.Status.OrDefault()
	if err := model.ValidateStruct(group); err != nil {
		return nil, err
	}

	data, err := s.groupRepo.UpdateGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to update group %s in repository: %w", group.ID, err)
	}
	return data, nil
}

// GetGroups 分页列出分组，nil 时使用默认 offset 0 / pageSize 30
func (s *GroupManageService) GetGroups(ctx context.Context, filter *model.GroupFilter) (json.RawMessage, error) {
	if filter == nil {
		filter = &model.GroupFilter{Offset: model.DefaultGroupOffset, PageSize: model.DefaultGroupPageSize}
	}
	if err := model.ValidateStruct(filter); err != nil {
		return nil, err
	}

	data, err := s.groupRepo.ListGroupsWithPage(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups from repository: %w", err)
	}
	return data, nil
}

func (s *GroupManageService) DeleteGroup(ctx context.Context, groupID string) (json.RawMessage, error) {
	if groupID == "" {
		return nil, ErrGroupIDRequired
	}

	data, err := s.groupRepo.DeleteGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete group %s from repository: %w", groupID, err)
	}
	return data, nil
}
