package model

import (
	"encoding/json"
)

// Rule 规则聚合根；只在一次工具调用内存在，不做本地持久化
type Rule struct {
	RuleID      string     `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RuleType    RuleType   `json:"ruleType"`
	Status      RuleStatus `json:"status"`
	GroupID     string     `json:"groupId,omitempty"`
	Pairs       []Pair     `json:"pairs"`
}

// RuleBody is the JSON body sent to the remote API on create and update.
type RuleBody struct {
	Name        string     `json:"name"`
	ObjectType  string     `json:"objectType"`
	Status      RuleStatus `json:"status"`
	RuleType    RuleType   `json:"ruleType"`
	Pairs       []Pair     `json:"pairs"`
	Description string     `json:"description,omitempty"`
	// absent and "" both mean "no group"; never sent as null
	GroupID string `json:"groupId,omitempty"`
}

// Body builds the outbound request body for the rule.
func (r *Rule) Body() *RuleBody {
	pairs := r.Pairs
	if pairs == nil {
		pairs = []Pair{}
	}
	return &RuleBody{
		Name:        r.Name,
		ObjectType:  ObjectTypeRule,
		Status:      r.Status.OrDefault(),
		RuleType:    r.RuleType,
		Pairs:       pairs,
		Description: r.Description,
		GroupID:     r.GroupID,
	}
}

func (r *Rule) MarshalBody() ([]byte, error) {
	return json.Marshal(r.Body())
}

// RuleFilter 定义规则查询参数
type RuleFilter struct {
	RuleID   string `json:"ruleId,omitempty"`
	Offset   *int   `json:"offset,omitempty" validate:"omitempty,min=0"`
	PageSize *int   `json:"pageSize,omitempty" validate:"omitempty,min=1,max=75"`
}

// Group is a named container of rules. Rules reference it by groupId; the
// group does not list its members.
type Group struct {
	ID          string     `json:"-"`
	Name        string     `json:"name" validate:"required"`
	Status      RuleStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
	IsFavourite bool       `json:"isFavourite"`
}

// GroupFilter 分组分页参数
type GroupFilter struct {
	Offset   int `json:"offset" validate:"min=0"`
	PageSize int `json:"pageSize"`
}

const (
	DefaultGroupOffset   = 0
	DefaultGroupPageSize = 30

	MinRulePageSize = 1
	MaxRulePageSize = 75
)
