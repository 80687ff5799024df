package repo

import (
	"requestly_mcp_server/internal/infra/storage"

	"github.com/google/wire"
)

var Reposet = wire.NewSet(
	storage.StorageSet,
	NewRuleRepoImpl,
	NewGroupRepoImpl,
)
