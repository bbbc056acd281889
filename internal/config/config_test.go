package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "blocks-mcp", cfg.App.Name)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Empty(t, cfg.Server.StatusAddr)
	assert.Equal(t, "https://chains.blockscout.com", cfg.Registry.URL)
	assert.Equal(t, 15*time.Second, cfg.Registry.GetTimeout())
	assert.Equal(t, 30*time.Second, cfg.Explorer.GetTimeout())
	assert.Equal(t, time.Duration(0), cfg.Cache.GetCleanupInterval())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BLOCKS_MCP_REGISTRY_URL", "https://registry.example")
	t.Setenv("BLOCKS_MCP_LOGGER_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://registry.example", cfg.Registry.URL)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
