package mcp_app

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"requestly_mcp_server/internal/domain/gateway"
	"requestly_mcp_server/internal/domain/iface"
	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/domain/services"
	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/internal/infra/storage"
	"requestly_mcp_server/utils"
)

// RequestlyController 实现全部 MCP 工具；每次调用独立，无共享可变状态
type RequestlyController struct {
	RuleManageService  iface.RuleService
	GroupManageService iface.GroupService

	apiKey      string
	recorder    *metrics.Recorder
	createShape *gateway.ShapeChecker
	updateShape *gateway.ShapeChecker
}

func NewRequestlyController(
	ruleManageService iface.RuleService,
	groupManageService iface.GroupService,
	cfg *configs.RequestlyConfig,
	recorder *metrics.Recorder,
) (*RequestlyController, error) {
	createShape, err := gateway.NewRuleShapeChecker(createRuleTool.Name, false)
	if err != nil {
		return nil, err
	}
	updateShape, err := gateway.NewRuleShapeChecker(updateRuleTool.Name, true)
	if err != nil {
		return nil, err
	}

	return &RequestlyController{
		RuleManageService:  ruleManageService,
		GroupManageService: groupManageService,
		apiKey:             cfg.APIKey,
		recorder:           recorder,
		createShape:        createShape,
		updateShape:        updateShape,
	}, nil
}

// CreateRule: shape check, strict validation, then one POST /rules.
func (c *RequestlyController) CreateRule(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, createRuleTool, args, func(ctx context.Context) (json.RawMessage, error) {
		if err := c.createShape.Check(args); err != nil {
			return nil, err
		}
		rule, err := model.ParseRule(args)
		if err != nil {
			return nil, err
		}
		return c.RuleManageService.CreateRule(ctx, rule)
	})
}

// UpdateRule reports a missing ruleId before looking at the rest of the payload.
func (c *RequestlyController) UpdateRule(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, updateRuleTool, args, func(ctx context.Context) (json.RawMessage, error) {
		if v, ok := args["ruleId"]; !ok || v == nil || v == "" {
			return nil, services.ErrRuleIDRequired
		}
		if err := c.updateShape.Check(args); err != nil {
			return nil, err
		}
		rule, err := model.ParseRule(args)
		if err != nil {
			return nil, err
		}
		return c.RuleManageService.UpdateRule(ctx, rule)
	})
}

func (c *RequestlyController) GetRules(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, getRulesTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req GetRulesRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.RuleManageService.GetRules(ctx, req.ConvertToRuleFilter())
	})
}

func (c *RequestlyController) DeleteRule(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, deleteRuleTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req DeleteRuleRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.RuleManageService.DeleteRule(ctx, derefOr(req.RuleID, ""))
	})
}

func (c *RequestlyController) CreateGroup(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, createGroupTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req CreateGroupRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.GroupManageService.CreateGroup(ctx, req.ConvertToGroup())
	})
}

func (c *RequestlyController) UpdateGroup(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, updateGroupTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req UpdateGroupRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.GroupManageService.UpdateGroup(ctx, req.ConvertToGroup())
	})
}

func (c *RequestlyController) GetGroups(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, getGroupsTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req GetGroupsRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.GroupManageService.GetGroups(ctx, req.ConvertToGroupFilter())
	})
}

func (c *RequestlyController) DeleteGroup(ctx context.Context, args map[string]any) *ToolResult {
	return c.invoke(ctx, deleteGroupTool, args, func(ctx context.Context) (json.RawMessage, error) {
		var req DeleteGroupRequest
		if err := model.DecodeArgs(args, &req); err != nil {
			return nil, err
		}
		return c.GroupManageService.DeleteGroup(ctx, derefOr(req.ID, ""))
	})
}

// resolveAPIKey: a non-empty apiKey argument wins over the configured key.
func (c *RequestlyController) resolveAPIKey(args map[string]any) string {
	if key, ok := args["apiKey"].(string); ok && key != "" {
		return key
	}
	return c.apiKey
}

// invoke runs one tool call. The API key is resolved before anything else so
// a missing key never reaches validation or the network; every failure,
// panics included, ends as an error result.
func (c *RequestlyController) invoke(
	ctx context.Context,
	meta toolMeta,
	args map[string]any,
	call func(ctx context.Context) (json.RawMessage, error),
) (result *ToolResult) {
	logger := utils.GetLogger().WithField("tool", meta.Name)
	logger.Info(meta.Name + " Begin")

	outcome := metrics.OutcomeSuccess
	defer func() {
		if err := recover(); err != nil {
			logger.WithFields(map[string]interface{}{
				"panic": err,
				"stack": string(debug.Stack()),
			}).Error("handle tool call panic")
			result, outcome = errorResult(meta, fmt.Errorf("internal error: %v", err))
		}
		if c.recorder != nil {
			c.recorder.ObserveTool(meta.Name, outcome)
		}
	}()

	apiKey := c.resolveAPIKey(args)
	if apiKey == "" {
		result, outcome = errorResult(meta, storage.ErrMissingAPIKey)
		logger.Warn("no api key configured")
		return result
	}

	data, err := call(storage.ContextWithAPIKey(ctx, apiKey))
	if err != nil {
		result, outcome = errorResult(meta, err)
		logger.Errorf("%s err: %v", meta.Name, err)
		return result
	}

	return successResult(data)
}
