package mcp_app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"requestly_mcp_server/internal/domain/gateway"
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/domain/services"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/internal/infra/storage"
)

// ToolResult is the text envelope every tool returns.
type ToolResult struct {
	Text    string
	IsError bool
}

// toolMeta names a tool and the words used in its messages,
// e.g. "Failed to create rule" / "Error creating rule".
type toolMeta struct {
	Name   string
	Title  string
	Verb   string
	Gerund string
	Entity string
}

var (
	createRuleTool  = toolMeta{Name: "create_rule", Title: "Create Rule", Verb: "create", Gerund: "creating", Entity: "rule"}
	updateRuleTool  = toolMeta{Name: "update_rule", Title: "Update Rule", Verb: "update", Gerund: "updating", Entity: "rule"}
	getRulesTool    = toolMeta{Name: "get_rules", Title: "Get Rules", Verb: "get", Gerund: "getting", Entity: "rules"}
	deleteRuleTool  = toolMeta{Name: "delete_rule", Title: "Delete Rule", Verb: "delete", Gerund: "deleting", Entity: "rule"}
	createGroupTool = toolMeta{Name: "create_group", Title: "Create Group", Verb: "create", Gerund: "creating", Entity: "group"}
	updateGroupTool = toolMeta{Name: "update_group", Title: "Update Group", Verb: "update", Gerund: "updating", Entity: "group"}
	getGroupsTool   = toolMeta{Name: "get_groups", Title: "Get Groups", Verb: "get", Gerund: "getting", Entity: "groups"}
	deleteGroupTool = toolMeta{Name: "delete_group", Title: "Delete Group", Verb: "delete", Gerund: "deleting", Entity: "group"}
)

// successResult pretty-prints the remote response with a two-space indent.
func successResult(data json.RawMessage) *ToolResult {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return &ToolResult{Text: string(data)}
	}
	return &ToolResult{Text: buf.String()}
}

// errorResult maps err onto the message shapes callers rely on and returns
// the metrics outcome alongside.
func errorResult(meta toolMeta, err error) (*ToolResult, string) {
	var (
		remoteErr *storage.RemoteError
		sve       *model.StructuralValidationError
		shapeErr  *gateway.ShapeError
	)

	switch {
	case errors.Is(err, storage.ErrMissingAPIKey):
		return &ToolResult{Text: "Error: " + storage.ErrMissingAPIKey.Error() + ".", IsError: true}, metrics.OutcomeConfigError
	case errors.Is(err, services.ErrRuleIDRequired), errors.Is(err, services.ErrGroupIDRequired):
		return &ToolResult{Text: "Error: " + err.Error() + ".", IsError: true}, metrics.OutcomeValidationError
	case errors.As(err, &sve), errors.As(err, &shapeErr):
		return &ToolResult{
			Text:    fmt.Sprintf("Error %s %s: %v", meta.Gerund, meta.Entity, err),
			IsError: true,
		}, metrics.OutcomeValidationError
	case errors.As(err, &remoteErr):
		return &ToolResult{
			Text:    fmt.Sprintf("Failed to %s %s: %d %s", meta.Verb, meta.Entity, remoteErr.StatusCode, remoteErr.Body),
			IsError: true,
		}, metrics.OutcomeRemoteError
	default:
		return &ToolResult{
			Text:    fmt.Sprintf("Error %s %s: %v", meta.Gerund, meta.Entity, err),
			IsError: true,
		}, metrics.OutcomeTransportError
	}
}
