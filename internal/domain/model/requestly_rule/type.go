package model

// RuleType is the discriminant of a rule; it decides the shape of every pair.
type RuleType string

const (
	RuleTypeRedirect   RuleType = "Redirect"
	RuleTypeCancel     RuleType = "Cancel"
	RuleTypeReplace    RuleType = "Replace"
	RuleTypeHeaders    RuleType = "Headers"
	RuleTypeUserAgent  RuleType = "UserAgent"
	RuleTypeQueryParam RuleType = "QueryParam"
	RuleTypeRequest    RuleType = "Request"
	RuleTypeResponse   RuleType = "Response"
	RuleTypeDelay      RuleType = "Delay"
)

func (t RuleType) IsValid() bool {
	_, ok := variantRegistry[t]
	return ok
}

func (t RuleType) String() string {
	return string(t)
}

// RuleStatus represents the current state of a rule or group
type RuleStatus string

const (
	RuleStatusActive   RuleStatus = "Active"
	RuleStatusInactive RuleStatus = "Inactive"
)

func (s RuleStatus) IsValid() bool {
	switch s {
	case RuleStatusActive, RuleStatusInactive:
		return true
	default:
		return false
	}
}

func (s RuleStatus) String() string {
	return string(s)
}

// OrDefault resolves an omitted status to Active.
func (s RuleStatus) OrDefault() RuleStatus {
	if s == "" {
		return RuleStatusActive
	}
	return s
}

// 匹配字段枚举
const (
	SourceKeyURL  = "Url"
	SourceKeyHost = "Host"
	SourceKeyPath = "Path"
)

// 操作符枚举
const (
	OpEquals          = "Equals"
	OpContains        = "Contains"
	OpMatches         = "Matches"
	OpWildcardMatches = "Wildcard_Matches"
)

// 修改类型枚举
const (
	ModificationAdd       = "Add"
	ModificationRemove    = "Remove"
	ModificationModify    = "Modify"
	ModificationRemoveAll = "Remove All"
)

// 请求/响应体类型
const (
	BodyTypeCode   = "code"
	BodyTypeStatic = "static"
)

// ObjectTypeRule is the objectType the remote API expects on rule bodies.
const ObjectTypeRule = "rule"
