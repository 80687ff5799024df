package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ruleEnvelope holds the fields shared by every rule type.
type ruleEnvelope struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	Status      RuleStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
	GroupID     *string    `json:"groupId"`
	RuleID      *string    `json:"ruleId"`
}

// ParseRule is the strict rule validator. It resolves the variant from
// ruleType, then validates the shared fields and every pair against that
// variant's shape. Failures come back as *StructuralValidationError listing
// all violations; an unknown ruleType fails on its own, before anything else
// is looked at.
func ParseRule(args map[string]any) (*Rule, error) {
	canonical, err := canonicalize(args)
	if err != nil {
		return nil, &StructuralValidationError{Violations: []Violation{{
			Path:     "",
			Expected: "JSON object",
			Received: fmt.Sprintf("%T", args),
			Message:  err.Error(),
		}}}
	}

	variant, v := resolveVariant(canonical)
	if v != nil {
		return nil, &StructuralValidationError{Violations: []Violation{*v}}
	}

	env, violations := decodeEnvelope(canonical)
	pairs, pairViolations := decodePairs(variant, canonical)
	violations = append(violations, pairViolations...)
	if len(violations) > 0 {
		return nil, &StructuralValidationError{Violations: violations}
	}

	rule := &Rule{
		Name:     env.Name,
		RuleType: variant.RuleType,
		Status:   env.Status.OrDefault(),
		Pairs:    pairs,
	}
	if env.Description != nil {
		rule.Description = *env.Description
	}
	if env.GroupID != nil {
		rule.GroupID = *env.GroupID
	}
	if env.RuleID != nil {
		rule.RuleID = *env.RuleID
	}
	return rule, nil
}

func resolveVariant(args map[string]any) (PairVariant, *Violation) {
	expected := "one of [" + joinRuleTypes() + "]"

	raw, ok := args["ruleType"]
	if !ok || raw == nil {
		return PairVariant{}, &Violation{
			Path:     "ruleType",
			Expected: expected,
			Received: "undefined",
			Message:  "ruleType is a required field",
		}
	}

	s, ok := raw.(string)
	if !ok {
		return PairVariant{}, &Violation{
			Path:     "ruleType",
			Expected: expected,
			Received: jsonKind(raw),
			Message:  "ruleType must be a string",
		}
	}

	variant, ok := LookupVariant(RuleType(s))
	if !ok {
		return PairVariant{}, &Violation{
			Path:     "ruleType",
			Expected: expected,
			Received: fmt.Sprintf("%q", s),
			Message:  "ruleType must be one of [" + joinRuleTypes() + "]",
		}
	}
	return variant, nil
}

func decodeEnvelope(args map[string]any) (*ruleEnvelope, []Violation) {
	env := &ruleEnvelope{}
	var violations []Violation

	data, _ := json.Marshal(exactKeys(args, reflect.TypeOf(env)))
	if err := json.Unmarshal(data, env); err != nil {
		violations = append(violations, decodeViolation(err, ""))
	}
	return env, mergeViolations(violations, structViolations(env, ""))
}

func decodePairs(variant PairVariant, args map[string]any) ([]Pair, []Violation) {
	raw, ok := args["pairs"]
	if !ok || raw == nil {
		return nil, []Violation{{
			Path:     "pairs",
			Expected: "array",
			Received: "undefined",
			Message:  "pairs is a required field",
		}}
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, []Violation{{
			Path:     "pairs",
			Expected: "array",
			Received: jsonKind(raw),
			Message:  "pairs must be an array",
		}}
	}

	pairs := make([]Pair, 0, len(items))
	var violations []Violation
	for i, item := range items {
		prefix := fmt.Sprintf("pairs[%d]", i)

		obj, ok := item.(map[string]any)
		if !ok {
			violations = append(violations, Violation{
				Path:     prefix,
				Expected: "object",
				Received: jsonKind(item),
				Message:  prefix + " must be an object",
			})
			continue
		}

		pair := variant.NewPair()
		var pairViolations []Violation
		data, _ := json.Marshal(exactKeys(obj, reflect.TypeOf(pair)))
		if err := json.Unmarshal(data, pair); err != nil {
			pairViolations = append(pairViolations, decodeViolation(err, prefix+"."))
		}
		pairViolations = mergeViolations(pairViolations, structViolations(pair, prefix+"."))
		violations = append(violations, pairViolations...)

		pairs = append(pairs, pair)
	}
	return pairs, violations
}

// decodeViolation turns a JSON decoding failure into a violation. Type
// mismatches keep the offending field path.
func decodeViolation(err error, prefix string) Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Violation{
			Path:     prefix + typeErr.Field,
			Expected: goKindToJSON(typeErr.Type),
			Received: typeErr.Value,
			Message:  fmt.Sprintf("%s must be of type %s", typeErr.Field, goKindToJSON(typeErr.Type)),
		}
	}
	return Violation{
		Path:     strings.TrimSuffix(prefix, "."),
		Expected: "valid JSON object",
		Received: "malformed value",
		Message:  err.Error(),
	}
}

// mergeViolations appends extra to base, skipping paths base already reports.
// A type mismatch leaves the field zero, which would otherwise also show up
// as "required".
func mergeViolations(base, extra []Violation) []Violation {
	seen := make(map[string]struct{}, len(base))
	for _, v := range base {
		seen[v.Path] = struct{}{}
	}
	for _, v := range extra {
		if _, ok := seen[v.Path]; ok {
			continue
		}
		base = append(base, v)
	}
	return base
}

// canonicalize re-encodes args so that values built in Go (typed slices,
// structs) look exactly like values decoded from a JSON request.
func canonicalize(args map[string]any) (map[string]any, error) {
	if args == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("arguments are not JSON encodable: %w", err)
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("arguments are not a JSON object: %w", err)
	}
	return out, nil
}

func joinRuleTypes() string {
	types := RuleTypes()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func goKindToJSON(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}
