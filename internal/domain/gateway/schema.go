package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
)

// The MCP tool input schema cannot say "pairs look like X when ruleType is
// Y", so the advertised schema is a single flat object: ruleType is an open
// string with the known literals as examples, pairs is an array of untyped
// items, and the per-type pair shapes live in the descriptions. Real
// enforcement happens in model.ParseRule.

type property map[string]any

// RuleSchemaDocument returns the input schema for create_rule, or for
// update_rule when withRuleID is set.
func RuleSchemaDocument(withRuleID bool) map[string]any {
	types := model.RuleTypes()
	examples := make([]string, len(types))
	for i, t := range types {
		examples[i] = string(t)
	}

	props := map[string]any{
		"name": property{
			"type":        "string",
			"description": "Name of the rule.",
		},
		"description": property{
			"type":        "string",
			"description": "Description of the rule.",
		},
		"ruleType": property{
			"type": "string",
			"description": "Type of the rule. This determines the structure of the pairs array. One of: " +
				strings.Join(examples, ", ") + ".",
			"examples": examples,
		},
		"status": property{
			"type":        "string",
			"description": "Status of the rule: Active or Inactive. Defaults to Active.",
			"default":     string(model.RuleStatusActive),
		},
		"groupId": property{
			"type":        "string",
			"description": "ID of the group the rule belongs to. Omit for no group.",
		},
		"apiKey": property{
			"type":        "string",
			"description": "Requestly API key (x-api-key header). Optional when the server has REQUESTLY_API_KEY configured.",
		},
		"pairs": property{
			"type":        "array",
			"items":       property{},
			"description": PairsDescription(),
		},
	}
	if withRuleID {
		props["ruleId"] = property{
			"type":        "string",
			"description": "Unique ID of the rule to update. The rule type cannot be changed by an update.",
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"name", "ruleType", "pairs"},
	}
}

// PairsDescription documents the pair shape of every rule type, generated
// from the same table the strict validator decodes with.
func PairsDescription() string {
	var b strings.Builder
	b.WriteString("List of rule pair objects. Structure depends on ruleType:\n")
	for _, v := range model.Variants() {
		fmt.Fprintf(&b, "- %s: each pair must have %s\n", v.RuleType, v.Fields)
	}
	b.WriteString("All source objects: " + model.SourceFields)
	return b.String()
}

// RawRuleSchema is RuleSchemaDocument encoded as JSON.
func RawRuleSchema(withRuleID bool) json.RawMessage {
	data, err := json.Marshal(RuleSchemaDocument(withRuleID))
	if err != nil {
		// only maps, slices and strings above
		panic(fmt.Errorf("encode rule schema: %w", err))
	}
	return data
}
