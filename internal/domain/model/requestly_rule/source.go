package model

import (
	"fmt"
	"strings"
)

// Source 描述一个 pair 匹配哪些请求
type Source struct {
	Key      string         `json:"key" validate:"required,oneof=Url Host Path"`
	Operator string         `json:"operator" validate:"required,oneof=Equals Contains Matches Wildcard_Matches"`
	Value    *string        `json:"value" validate:"required"`
	Filters  []SourceFilter `json:"filters,omitempty" validate:"omitempty,dive"`
}

// SourceFilter narrows a source match by request method and/or a payload
// key/value pair. Both parts are optional.
type SourceFilter struct {
	RequestMethod  []string              `json:"requestMethod,omitempty" validate:"omitempty,dive,required"`
	RequestPayload *RequestPayloadFilter `json:"requestPayload,omitempty"`
}

type RequestPayloadFilter struct {
	Key   *string `json:"key" validate:"required"`
	Value string  `json:"value"`
}

func (s Source) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %q", s.Key, s.Operator, stringValue(s.Value))
	for _, f := range s.Filters {
		if len(f.RequestMethod) > 0 {
			fmt.Fprintf(&b, " method in [%s]", strings.Join(f.RequestMethod, ","))
		}
		if f.RequestPayload != nil {
			fmt.Fprintf(&b, " payload %s=%q", stringValue(f.RequestPayload.Key), f.RequestPayload.Value)
		}
	}
	return b.String()
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
