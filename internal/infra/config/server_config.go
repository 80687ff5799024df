package configs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"requestly_mcp_server/utils"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "REQUESTLY_CONFIG_PATH"
	EnvAPIKey     = "REQUESTLY_API_KEY"

	DefaultBaseURL = "https://api2.requestly.io/v1"
	DefaultTimeout = 30 * time.Second
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ServerConfig MCP 服务配置
type ServerConfig struct {
	Requestly RequestlyConfig `yaml:"requestly"`
	Transport TransportConfig `yaml:"transport"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// RequestlyConfig 远端 Requestly API 配置
type RequestlyConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"-" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type TransportConfig struct {
	Mode   string `json:"mode" yaml:"mode"`
	Listen string `json:"listen" yaml:"listen"`
}

// MetricsConfig: empty Listen disables the /metrics endpoint.
type MetricsConfig struct {
	Listen string `json:"listen" yaml:"listen"`
}

type LogConfig struct {
	Level      string `json:"level" yaml:"level"`
	FilePath   string `json:"filePath" yaml:"filePath"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// Options converts the log section into logger options.
func (c LogConfig) Options() utils.LogOptions {
	return utils.LogOptions{
		Level:      c.Level,
		FilePath:   c.FilePath,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// LoadServerConfig 加载配置
//
// path 为空时使用 REQUESTLY_CONFIG_PATH；两者都为空时只用默认值。
// REQUESTLY_API_KEY 总是覆盖文件中的 apiKey。
func LoadServerConfig(path string) (*ServerConfig, error) {
	// 1. 确定配置文件路径
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	// 2. 读取并解析配置
	config := &ServerConfig{}
	if path != "" {
		configFile, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(configFile, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// 3. 环境变量与默认值
	if key := os.Getenv(EnvAPIKey); key != "" {
		config.Requestly.APIKey = key
	}
	config.applyDefaults()

	// 4. 验证配置
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// NewRequestlyConfig 供 wire 注入
func NewRequestlyConfig(c *ServerConfig) *RequestlyConfig {
	return &c.Requestly
}

func (c *ServerConfig) applyDefaults() {
	if c.Requestly.BaseURL == "" {
		c.Requestly.BaseURL = DefaultBaseURL
	}
	c.Requestly.BaseURL = strings.TrimRight(c.Requestly.BaseURL, "/")
	if c.Requestly.Timeout == 0 {
		c.Requestly.Timeout = DefaultTimeout
	}
	if c.Transport.Mode == "" {
		c.Transport.Mode = TransportStdio
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate re-checks the config, e.g. after command-line overrides.
func (c *ServerConfig) Validate() error {
	return c.validate()
}

func (c *ServerConfig) validate() error {
	u, err := url.Parse(c.Requestly.BaseURL)
	if err != nil {
		return fmt.Errorf("requestly baseUrl is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("requestly baseUrl must be an absolute http(s) url, got %q", c.Requestly.BaseURL)
	}
	if c.Requestly.Timeout < 0 {
		return errors.New("requestly timeout must be positive")
	}

	switch c.Transport.Mode {
	case TransportStdio:
	case TransportHTTP:
		if c.Transport.Listen == "" {
			return errors.New("transport listen address is required for http transport")
		}
	default:
		return fmt.Errorf("unknown transport %q, want %s or %s", c.Transport.Mode, TransportStdio, TransportHTTP)
	}

	return nil
}
