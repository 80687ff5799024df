package storage

import (
	configs "requestly_mcp_server/internal/infra/config"

	"github.com/google/wire"
)

// StorageSet is a Wire provider set that includes all storage-related providers
var StorageSet = wire.NewSet(
	configs.NewRequestlyConfig,
	NewHTTPClient,
	NewRequestlyAPI,
)
