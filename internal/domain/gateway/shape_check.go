package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ShapeChecker validates tool arguments against an advertised input schema.
// It is deliberately loose; it only catches arguments the schema itself
// cannot describe (wrong JSON types, missing envelope fields).
type ShapeChecker struct {
	tool   string
	raw    json.RawMessage
	schema *jsonschema.Schema
}

// ShapeError is returned when arguments do not fit the advertised schema.
type ShapeError struct {
	Tool string
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("arguments do not match the %s input schema: %v", e.Tool, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// NewShapeChecker compiles raw for the named tool.
func NewShapeChecker(tool string, raw json.RawMessage) (*ShapeChecker, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s schema: %w", tool, err)
	}

	url := tool + ".schema.json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add %s schema: %w", tool, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", tool, err)
	}

	return &ShapeChecker{tool: tool, raw: raw, schema: compiled}, nil
}

// NewRuleShapeChecker builds the checker for create_rule or update_rule.
func NewRuleShapeChecker(tool string, withRuleID bool) (*ShapeChecker, error) {
	return NewShapeChecker(tool, RawRuleSchema(withRuleID))
}

// Raw returns the schema document as advertised to clients.
func (c *ShapeChecker) Raw() json.RawMessage {
	return c.raw
}

// Check validates args. Top-level nulls count as absent, the same way the
// strict validator reads them.
func (c *ShapeChecker) Check(args map[string]any) error {
	trimmed := make(map[string]any, len(args))
	for k, v := range args {
		if v != nil {
			trimmed[k] = v
		}
	}

	data, err := json.Marshal(trimmed)
	if err != nil {
		return &ShapeError{Tool: c.tool, Err: err}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ShapeError{Tool: c.tool, Err: err}
	}

	if err := c.schema.Validate(inst); err != nil {
		return &ShapeError{Tool: c.tool, Err: err}
	}
	return nil
}
