package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"requestly_mcp_server/app/mcp_app"
	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/internal/infra/metrics"
	"requestly_mcp_server/utils"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// App 组装好的服务进程
type App struct {
	Config     *configs.ServerConfig
	Controller *mcp_app.RequestlyController
	Server     *server.MCPServer
	Registry   *prometheus.Registry
}

func NewApp(cfg *configs.ServerConfig, ctrl *mcp_app.RequestlyController, s *server.MCPServer, reg *prometheus.Registry) *App {
	return &App{Config: cfg, Controller: ctrl, Server: s, Registry: reg}
}

// Run serves the MCP transport and, when configured, the metrics endpoint.
// It returns when ctx is cancelled, stdin closes (stdio) or either server fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	switch a.Config.Transport.Mode {
	case configs.TransportHTTP:
		a.serveStreamableHTTP(ctx, cancel, g)
	default:
		a.serveStdio(ctx, cancel, g)
	}

	if a.Config.Metrics.Listen != "" {
		a.serveMetrics(ctx, g)
	}

	return g.Wait()
}

func (a *App) serveStdio(ctx context.Context, cancel context.CancelFunc, g *errgroup.Group) {
	logger := utils.GetLogger()

	stdio := server.NewStdioServer(a.Server)
	stdio.SetErrorLogger(log.New(logger.WriterLevel(logrus.ErrorLevel), "", 0))

	g.Go(func() error {
		defer cancel()
		logger.Infof("%s %s serving on stdio", mcp_app.ServerName, mcp_app.ServerVersion)
		if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio transport: %w", err)
		}
		return nil
	})
}

func (a *App) serveStreamableHTTP(ctx context.Context, cancel context.CancelFunc, g *errgroup.Group) {
	logger := utils.GetLogger()
	addr := a.Config.Transport.Listen
	httpServer := server.NewStreamableHTTPServer(a.Server)

	g.Go(func() error {
		defer cancel()
		logger.Infof("%s %s serving streamable HTTP on %s", mcp_app.ServerName, mcp_app.ServerVersion, addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http transport: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		return httpServer.Shutdown(shutdownCtx)
	})
}

func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group) {
	logger := utils.GetLogger()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(a.Registry))
	metricsServer := &http.Server{
		Addr:              a.Config.Metrics.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Infof("metrics listening on %s/metrics", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		return metricsServer.Shutdown(shutdownCtx)
	})
}

// WriteTools prints every tool definition as indented JSON.
func (a *App) WriteTools(w io.Writer) error {
	serverTools := a.Controller.ServerTools()
	tools := make([]mcp.Tool, 0, len(serverTools))
	for _, st := range serverTools {
		tools = append(tools, st.Tool)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tools)
}
