package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Registry RegistryConfig `mapstructure:"registry"`
	Explorer ExplorerConfig `mapstructure:"explorer"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds MCP transport and diagnostics server configuration.
type ServerConfig struct {
	// Transport selects how the MCP server talks to its client: "stdio" or "sse".
	Transport string `mapstructure:"transport"`
	// SSEAddr is the listen address used when Transport is "sse".
	SSEAddr string `mapstructure:"sse_addr"`
	// StatusAddr is the listen address of the diagnostics HTTP server.
	// Empty disables it.
	StatusAddr string `mapstructure:"status_addr"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// RegistryConfig holds configuration for the chain registry data source.
type RegistryConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ExplorerConfig holds settings for outgoing explorer API requests.
type ExplorerConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds settings for the chain cache. Entries never expire;
// CleanupInterval <= 0 keeps the janitor goroutine disabled.
type CacheConfig struct {
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "blocks-mcp")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.sse_addr", ":8080")
	v.SetDefault("server.status_addr", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("registry.url", "https://chains.blockscout.com")
	v.SetDefault("registry.timeout", "15s")
	v.SetDefault("explorer.timeout", "30s")
	v.SetDefault("cache.cleanup_interval", "0")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	v.SetEnvPrefix("BLOCKS_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c RegistryConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c ExplorerConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
