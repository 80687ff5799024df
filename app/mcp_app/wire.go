package mcp_app

import (
	"github.com/google/wire"
)

var ControllerSet = wire.NewSet(
	NewRequestlyController,
	NewMCPServer,
)
