package model

// Pair is one match-and-action entry of a rule. The concrete type is fixed by
// the rule's RuleType.
type Pair interface {
	RuleType() RuleType
	MatchSource() Source
}

var (
	_ Pair = (*RedirectPair)(nil)
	_ Pair = (*CancelPair)(nil)
	_ Pair = (*ReplacePair)(nil)
	_ Pair = (*HeadersPair)(nil)
	_ Pair = (*UserAgentPair)(nil)
	_ Pair = (*QueryParamPair)(nil)
	_ Pair = (*RequestPair)(nil)
	_ Pair = (*ResponsePair)(nil)
	_ Pair = (*DelayPair)(nil)
)

// Required strings are pointers: "" is a legal value, only absence fails.
type RedirectPair struct {
	Source          Source  `json:"source" validate:"required"`
	DestinationType *string `json:"destinationType" validate:"required"`
	Destination     *string `json:"destination" validate:"required"`
}

type CancelPair struct {
	Source Source `json:"source" validate:"required"`
}

type ReplacePair struct {
	Source Source  `json:"source" validate:"required"`
	From   *string `json:"from" validate:"required"`
	To     *string `json:"to" validate:"required"`
}

type HeaderModification struct {
	Header *string `json:"header" validate:"required"`
	Type   string  `json:"type" validate:"required,oneof=Add Remove Modify"`
	Value  *string `json:"value,omitempty"`
}

type HeaderModifications struct {
	Request  []HeaderModification `json:"Request,omitempty" validate:"omitempty,dive"`
	Response []HeaderModification `json:"Response,omitempty" validate:"omitempty,dive"`
}

type HeadersPair struct {
	Source        Source               `json:"source" validate:"required"`
	Modifications *HeaderModifications `json:"modifications" validate:"required"`
}

type UserAgentPair struct {
	Source    Source  `json:"source" validate:"required"`
	UserAgent *string `json:"userAgent" validate:"required"`
}

type QueryParamModification struct {
	Param *string `json:"param" validate:"required"`
	Type  string  `json:"type" validate:"required,oneof=Add Remove 'Remove All'"`
	Value *string `json:"value,omitempty"`
}

type QueryParamPair struct {
	Source        Source                   `json:"source" validate:"required"`
	Modifications []QueryParamModification `json:"modifications" validate:"required,dive"`
}

type RequestModification struct {
	Type  string  `json:"type" validate:"required,oneof=code static"`
	Value *string `json:"value" validate:"required"`
}

type RequestPair struct {
	Source  Source               `json:"source" validate:"required"`
	Request *RequestModification `json:"request" validate:"required"`
}

type ResponseModification struct {
	Type                string  `json:"type" validate:"required,oneof=code static"`
	Value               *string `json:"value" validate:"required"`
	ResourceType        string  `json:"resourceType,omitempty"`
	StatusCode          string  `json:"statusCode,omitempty" validate:"omitempty,digits"`
	StatusText          string  `json:"statusText,omitempty"`
	ServeWithoutRequest *bool   `json:"serveWithoutRequest,omitempty"`
}

type ResponsePair struct {
	Source   Source                `json:"source" validate:"required"`
	Response *ResponseModification `json:"response" validate:"required"`
}

type DelayPair struct {
	Source Source `json:"source" validate:"required"`
	// milliseconds, digits only
	Delay string `json:"delay" validate:"required,digits"`
}

func (p *RedirectPair) RuleType() RuleType   { return RuleTypeRedirect }
func (p *CancelPair) RuleType() RuleType     { return RuleTypeCancel }
func (p *ReplacePair) RuleType() RuleType    { return RuleTypeReplace }
func (p *HeadersPair) RuleType() RuleType    { return RuleTypeHeaders }
func (p *UserAgentPair) RuleType() RuleType  { return RuleTypeUserAgent }
func (p *QueryParamPair) RuleType() RuleType { return RuleTypeQueryParam }
func (p *RequestPair) RuleType() RuleType    { return RuleTypeRequest }
func (p *ResponsePair) RuleType() RuleType   { return RuleTypeResponse }
func (p *DelayPair) RuleType() RuleType      { return RuleTypeDelay }

func (p *RedirectPair) MatchSource() Source   { return p.Source }
func (p *CancelPair) MatchSource() Source     { return p.Source }
func (p *ReplacePair) MatchSource() Source    { return p.Source }
func (p *HeadersPair) MatchSource() Source    { return p.Source }
func (p *UserAgentPair) MatchSource() Source  { return p.Source }
func (p *QueryParamPair) MatchSource() Source { return p.Source }
func (p *RequestPair) MatchSource() Source    { return p.Source }
func (p *ResponsePair) MatchSource() Source   { return p.Source }
func (p *DelayPair) MatchSource() Source      { return p.Source }
