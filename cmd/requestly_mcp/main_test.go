package main

import (
	"bytes"
	"encoding/json"
	"testing"

	configs "requestly_mcp_server/internal/infra/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "requestly-mcp", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	commandNames := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		commandNames = append(commandNames, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "tools"}, commandNames)
}

func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"config", "transport", "listen", "metrics-listen"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv(configs.EnvConfigPath, "")
	t.Setenv(configs.EnvAPIKey, "env-key")

	tests := []struct {
		name    string
		args    []string
		want    func(*testing.T, *configs.ServerConfig)
		wantErr string
	}{
		{
			name: "defaults",
			args: nil,
			want: func(t *testing.T, cfg *configs.ServerConfig) {
				assert.Equal(t, configs.TransportStdio, cfg.Transport.Mode)
				assert.Equal(t, "env-key", cfg.Requestly.APIKey)
				assert.Empty(t, cfg.Metrics.Listen)
			},
		},
		{
			name: "http transport",
			args: []string{"--transport", "http", "--listen", "127.0.0.1:0", "--metrics-listen", "127.0.0.1:0"},
			want: func(t *testing.T, cfg *configs.ServerConfig) {
				assert.Equal(t, configs.TransportHTTP, cfg.Transport.Mode)
				assert.Equal(t, "127.0.0.1:0", cfg.Transport.Listen)
				assert.Equal(t, "127.0.0.1:0", cfg.Metrics.Listen)
			},
		},
		{
			name:    "http transport without listen",
			args:    []string{"--transport", "http"},
			wantErr: "listen address is required",
		},
		{
			name:    "unknown transport",
			args:    []string{"--transport", "sse"},
			wantErr: "unknown transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "serve"}
			opts := &serveOptions{}
			bindServeFlags(cmd, opts)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg, err := loadConfig(cmd, opts)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestToolsCmd(t *testing.T) {
	t.Setenv(configs.EnvConfigPath, "")
	t.Setenv(configs.EnvAPIKey, "")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools"})
	require.NoError(t, cmd.Execute())

	var tools []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tools))
	assert.Len(t, tools, 8)
	assert.Equal(t, "create_rule", tools[0]["name"])
}
