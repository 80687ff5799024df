//go:build wireinject
// +build wireinject

package main

import (
	"requestly_mcp_server/app/mcp_app"
	"requestly_mcp_server/internal/domain/services"
	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/internal/infra/repo"

	"github.com/google/wire"
)

func InitializeApp(cfg *configs.ServerConfig) (*App, error) {
	wire.Build(
		metrics.NewRegistry,
		metrics.NewRecorder,
		repo.Reposet,
		services.ServiceSet,
		mcp_app.ControllerSet,
		NewApp,
	)
	return &App{}, nil
}
