//go:build wireinject
// +build wireinject

package rulerepotest

import (
	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/internal/infra/repo"

	"github.com/google/wire"
)

type RepoRuleTestSuite struct {
	Repo      repo.RuleRepositoryIface
	GroupRepo repo.GroupRepositoryIface
}

func NewRepoRuleTestSuite(r repo.RuleRepositoryIface, g repo.GroupRepositoryIface) *RepoRuleTestSuite {
	return &RepoRuleTestSuite{Repo: r, GroupRepo: g}
}

func InitializeRepoTest(cfg *configs.ServerConfig) (*RepoRuleTestSuite, error) {
	wire.Build(metrics.NewRegistry, metrics.NewRecorder, repo.Reposet, NewRepoRuleTestSuite)
	return &RepoRuleTestSuite{}, nil
}
