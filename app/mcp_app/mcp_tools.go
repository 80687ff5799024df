package mcp_app

import (
	"context"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "requestly-mcp-server"
	ServerVersion = "1.0.0"

	serverInstructions = "MCP server for automating and managing Requestly rules and groups via the Requestly API " +
		"(https://docs.requestly.io/api). Authentication is the x-api-key header, taken from REQUESTLY_API_KEY " +
		"or the apiKey argument. A rule's ruleType cannot be changed by update_rule; delete it and create a new one."

	apiKeyDescription = "Requestly API key. Optional when the server has REQUESTLY_API_KEY configured."
)

type toolFunc func(ctx context.Context, args map[string]any) *ToolResult

// toolHandler adapts a controller method to the mcp-go handler signature.
func toolHandler(fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := fn(ctx, request.GetArguments())
		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}

// ServerTools lists every tool with its advertised input schema.
func (c *RequestlyController) ServerTools() []server.ServerTool {
	createRule := mcp.NewToolWithRawSchema(createRuleTool.Name,
		"Create a new rule in Requestly. The structure of pairs depends on ruleType; see the pairs description.",
		c.createShape.Raw())
	createRule.Annotations.Title = createRuleTool.Title

	updateRule := mcp.NewToolWithRawSchema(updateRuleTool.Name,
		"Update an existing rule in Requestly. Requires ruleId and the full updated rule payload.",
		c.updateShape.Raw())
	updateRule.Annotations.Title = updateRuleTool.Title

	getRules := mcp.NewTool(getRulesTool.Name,
		mcp.WithDescription("Retrieve all rules or a specific rule from Requestly. Supports pagination and lookup by ruleId."),
		mcp.WithTitleAnnotation(getRulesTool.Title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("ruleId", mcp.Description("Unique ID of the rule to retrieve. If omitted, retrieves all rules.")),
		mcp.WithNumber("offset", mcp.Description("Index to start results from (for pagination)."), mcp.Min(0)),
		mcp.WithNumber("pageSize",
			mcp.Description("Number of results to return (max 75)."),
			mcp.Min(model.MinRulePageSize),
			mcp.Max(model.MaxRulePageSize),
		),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	deleteRule := mcp.NewTool(deleteRuleTool.Name,
		mcp.WithDescription("Delete a specific rule in Requestly using its ruleId."),
		mcp.WithTitleAnnotation(deleteRuleTool.Title),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("ruleId", mcp.Required(), mcp.Description("Unique identifier for the rule to delete.")),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	createGroup := mcp.NewTool(createGroupTool.Name,
		mcp.WithDescription("Create a new group in Requestly."),
		mcp.WithTitleAnnotation(createGroupTool.Title),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the group to be created.")),
		groupStatusOption(),
		groupFavouriteOption(),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	updateGroup := mcp.NewTool(updateGroupTool.Name,
		mcp.WithDescription("Update a specific group in Requestly."),
		mcp.WithTitleAnnotation(updateGroupTool.Title),
		mcp.WithString("id", mcp.Required(), mcp.Description("Unique identifier of the group to update.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("New name of the group.")),
		groupStatusOption(),
		groupFavouriteOption(),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	getGroups := mcp.NewTool(getGroupsTool.Name,
		mcp.WithDescription("Get all groups in Requestly."),
		mcp.WithTitleAnnotation(getGroupsTool.Title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("offset", mcp.DefaultNumber(model.DefaultGroupOffset)),
		mcp.WithNumber("pageSize", mcp.DefaultNumber(model.DefaultGroupPageSize)),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	deleteGroup := mcp.NewTool(deleteGroupTool.Name,
		mcp.WithDescription("Delete a specific group in Requestly using its id."),
		mcp.WithTitleAnnotation(deleteGroupTool.Title),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("id", mcp.Required(), mcp.Description("Unique identifier of the group to delete.")),
		mcp.WithString("apiKey", mcp.Description(apiKeyDescription)),
	)

	return []server.ServerTool{
		{Tool: createRule, Handler: toolHandler(c.CreateRule)},
		{Tool: updateRule, Handler: toolHandler(c.UpdateRule)},
		{Tool: getRules, Handler: toolHandler(c.GetRules)},
		{Tool: deleteRule, Handler: toolHandler(c.DeleteRule)},
		{Tool: createGroup, Handler: toolHandler(c.CreateGroup)},
		{Tool: updateGroup, Handler: toolHandler(c.UpdateGroup)},
		{Tool: getGroups, Handler: toolHandler(c.GetGroups)},
		{Tool: deleteGroup, Handler: toolHandler(c.DeleteGroup)},
	}
}

func groupStatusOption() mcp.ToolOption {
	return mcp.WithString("status",
		mcp.Enum(string(model.RuleStatusActive), string(model.RuleStatusInactive)),
		mcp.DefaultString(string(model.RuleStatusActive)),
	)
}

func groupFavouriteOption() mcp.ToolOption {
	return mcp.WithBoolean("isFavourite", mcp.DefaultBool(false))
}

// NewMCPServer builds the MCP server with every Requestly tool registered.
func NewMCPServer(ctrl *RequestlyController) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions(serverInstructions),
		server.WithRecovery(),
	)
	s.AddTools(ctrl.ServerTools()...)
	return s
}
