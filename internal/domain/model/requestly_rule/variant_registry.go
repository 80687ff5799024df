package model

// PairVariant ties a rule type to its pair shape. The strict validator decodes
// pairs through NewPair and the gateway schema documents them through Fields.
type PairVariant struct {
	RuleType RuleType
	// Fields lists the required sub-fields of one pair, in prose.
	Fields  string
	NewPair func() Pair
}

// SourceFields documents the matcher shared by every pair shape.
const SourceFields = `source: {key: "Url"|"Host"|"Path", operator: "Equals"|"Contains"|"Matches"|"Wildcard_Matches", ` +
	`value: string, filters?: [{requestMethod?: [string], requestPayload?: {key: string, value: string}}]}`

var (
	variantRegistry = make(map[RuleType]PairVariant)
	variantOrder    []RuleType
)

func RegisterVariant(v PairVariant) {
	if _, ok := variantRegistry[v.RuleType]; !ok {
		variantOrder = append(variantOrder, v.RuleType)
	}
	variantRegistry[v.RuleType] = v
}

// LookupVariant returns the pair shape registered for t.
func LookupVariant(t RuleType) (PairVariant, bool) {
	v, ok := variantRegistry[t]
	return v, ok
}

// Variants returns every registered variant in registration order.
func Variants() []PairVariant {
	out := make([]PairVariant, 0, len(variantOrder))
	for _, t := range variantOrder {
		out = append(out, variantRegistry[t])
	}
	return out
}

// RuleTypes returns the known rule type literals in registration order.
func RuleTypes() []RuleType {
	return append([]RuleType(nil), variantOrder...)
}

// 初始化时注册
func init() {
	RegisterVariant(PairVariant{
		RuleType: RuleTypeRedirect,
		Fields:   "source, destinationType (string), destination (target URL string)",
		NewPair:  func() Pair { return &RedirectPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeCancel,
		Fields:   "source (requests to cancel)",
		NewPair:  func() Pair { return &CancelPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeReplace,
		Fields:   "source, from (string to replace), to (replacement string, may be empty)",
		NewPair:  func() Pair { return &ReplacePair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeHeaders,
		Fields: `source, modifications: {Request?: [HeaderMod], Response?: [HeaderMod]} ` +
			`where HeaderMod = {header: string, type: "Add"|"Remove"|"Modify", value?: string}`,
		NewPair: func() Pair { return &HeadersPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeUserAgent,
		Fields:   "source, userAgent (custom user agent string)",
		NewPair:  func() Pair { return &UserAgentPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeQueryParam,
		Fields: `source, modifications: [QueryParamMod] ` +
			`where QueryParamMod = {param: string, type: "Add"|"Remove"|"Remove All", value?: string}`,
		NewPair: func() Pair { return &QueryParamPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeRequest,
		Fields:   `source, request: {type: "code"|"static", value: string}`,
		NewPair:  func() Pair { return &RequestPair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeResponse,
		Fields: `source, response: {type: "code"|"static", value: string, resourceType?: string, ` +
			`statusCode?: string of digits such as "200" (a JSON number is rejected), statusText?: string, serveWithoutRequest?: boolean}`,
		NewPair: func() Pair { return &ResponsePair{} },
	})
	RegisterVariant(PairVariant{
		RuleType: RuleTypeDelay,
		Fields:   `source, delay (milliseconds as a string of digits only, e.g. "2000")`,
		NewPair:  func() Pair { return &DelayPair{} },
	})
}
