package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configs "requestly_mcp_server/internal/infra/config"
	"requestly_mcp_server/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "requestly-mcp",
		Short: "MCP server for managing Requestly rules and groups",
		Long: `An MCP server exposing the Requestly rule and group API as tools.
The API key is read from REQUESTLY_API_KEY, the config file, or the apiKey tool argument.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsCmd())

	return rootCmd
}

type serveOptions struct {
	configPath    string
	transport     string
	listen        string
	metricsListen string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Requestly tools over MCP",
		Long: `Serve the Requestly tools over stdio (default) or streamable HTTP.
Logs go to stderr and the optional log file; stdout carries protocol frames only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			utils.InitLogger(cfg.Log.Options())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			return app.Run(ctx)
		},
	}

	bindServeFlags(cmd, opts)
	return cmd
}

func bindServeFlags(cmd *cobra.Command, opts *serveOptions) {
	addConfigFlag(cmd, &opts.configPath)
	cmd.Flags().StringVar(&opts.transport, "transport", configs.TransportStdio, "MCP transport: stdio or http")
	cmd.Flags().StringVar(&opts.listen, "listen", "", "listen address for the http transport, e.g. 127.0.0.1:8080")
	cmd.Flags().StringVar(&opts.metricsListen, "metrics-listen", "", "listen address for the Prometheus /metrics endpoint (disabled when empty)")
}

func newToolsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool list with input schemas as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadServerConfig(configPath)
			if err != nil {
				return err
			}
			app, err := InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			return app.WriteTools(cmd.OutOrStdout())
		},
	}

	addConfigFlag(cmd, &configPath)
	return cmd
}

func addConfigFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "config", "c", "", "path to the YAML config file (default: $"+configs.EnvConfigPath+")")
}

// loadConfig reads the config file, then applies flags the user actually set.
func loadConfig(cmd *cobra.Command, opts *serveOptions) (*configs.ServerConfig, error) {
	cfg, err := configs.LoadServerConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Transport.Mode = opts.transport
	}
	if flags.Changed("listen") {
		cfg.Transport.Listen = opts.listen
	}
	if flags.Changed("metrics-listen") {
		cfg.Metrics.Listen = opts.metricsListen
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
