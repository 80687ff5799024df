package model

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DecodeArgs decodes tool arguments into dst (a pointer to a tagged struct)
// and validates it. Type mismatches and tag violations are reported together
// as a *StructuralValidationError. Keys must match the json tags exactly;
// anything else is ignored.
func DecodeArgs(args map[string]any, dst any) error {
	canonical, err := canonicalize(args)
	if err != nil {
		return &StructuralValidationError{Violations: []Violation{{
			Expected: "JSON object",
			Received: fmt.Sprintf("%T", args),
			Message:  err.Error(),
		}}}
	}

	var violations []Violation
	data, _ := json.Marshal(exactKeys(canonical, reflect.TypeOf(dst)))
	if err := json.Unmarshal(data, dst); err != nil {
		violations = append(violations, decodeViolation(err, ""))
	}
	violations = mergeViolations(violations, structViolations(dst, ""))
	if len(violations) > 0 {
		return &StructuralValidationError{Violations: violations}
	}
	return nil
}
