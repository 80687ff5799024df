package mcp_app

import (
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
)

// Tool argument DTOs. Type mismatches are caught by model.DecodeArgs; value
// constraints live on the model types and are checked by the services.

type GetRulesRequest struct {
	RuleID   *string `json:"ruleId"`
	Offset   *int    `json:"offset"`
	PageSize *int    `json:"pageSize"`
}

// ConvertToRuleFilter converts GetRulesRequest DTO to RuleFilter model
func (req *GetRulesRequest) ConvertToRuleFilter() *model.RuleFilter {
	filter := &model.RuleFilter{Offset: req.Offset, PageSize: req.PageSize}
	if req.RuleID != nil {
		filter.RuleID = *req.RuleID
	}
	return filter
}

type DeleteRuleRequest struct {
	RuleID *string `json:"ruleId"`
}

type CreateGroupRequest struct {
	Name        string           `json:"name"`
	Status      model.RuleStatus `json:"status"`
	IsFavourite *bool            `json:"isFavourite"`
}

// ConvertToGroup applies the create_group defaults: status Active, not a favourite.
func (req *CreateGroupRequest) ConvertToGroup() *model.Group {
	group := &model.Group{
		Name:   req.Name,
		Status: req.Status.OrDefault(),
	}
	if req.IsFavourite != nil {
		group.IsFavourite = *req.IsFavourite
	}
	return group
}

type UpdateGroupRequest struct {
	ID *string `json:"id"`
	CreateGroupRequest
}

func (req *UpdateGroupRequest) ConvertToGroup() *model.Group {
	group := req.CreateGroupRequest.ConvertToGroup()
	if req.ID != nil {
		group.ID = *req.ID
	}
	return group
}

type GetGroupsRequest struct {
	Offset   *int `json:"offset"`
	PageSize *int `json:"pageSize"`
}

// ConvertToGroupFilter fills in offset 0 and pageSize 30 when omitted.
func (req *GetGroupsRequest) ConvertToGroupFilter() *model.GroupFilter {
	filter := &model.GroupFilter{Offset: model.DefaultGroupOffset, PageSize: model.DefaultGroupPageSize}
	if req.Offset != nil {
		filter.Offset = *req.Offset
	}
	if req.PageSize != nil {
		filter.PageSize = *req.PageSize
	}
	return filter
}

type DeleteGroupRequest struct {
	ID *string `json:"id"`
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
