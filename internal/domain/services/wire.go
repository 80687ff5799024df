package services

import (
	"requestly_mcp_server/internal/domain/iface"

	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	NewRuleManageService,
	wire.Bind(new(iface.RuleService), new(*RuleManageService)),
	NewGroupManageService,
	wire.Bind(new(iface.GroupService), new(*GroupManageService)),
)
