package config_test

import (
	"testing"

	"siteserve/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)
	assert.True(t, cfg.Browser.Enabled)
	assert.Equal(t, 800, cfg.Browser.DelayMS)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.NoError(t, cfg.Server.Validate())
	assert.Equal(t, "http://localhost:9999", cfg.Server.URL())
}

func TestLoadConfig_MalformedPortFailsValidation(t *testing.T) {
	t.Setenv("PORT", "notanumber")

	// Loading carries the raw value through; validation is what rejects
	// it, so the startup path can fail loudly instead of defaulting.
	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)
	assert.Equal(t, "notanumber", cfg.Server.Port)
	assert.Error(t, cfg.Server.Validate())
}

func TestLoadConfig_PrefixedEnvStillWorks(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")

	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
}

func TestLoadConfig_BrowserOverrides(t *testing.T) {
	t.Setenv("BROWSER_ENABLED", "false")
	t.Setenv("BROWSER_DELAY_MS", "100")

	cfg, err := config.LoadConfig(".")
	assert.NoError(t, err)
	assert.False(t, cfg.Browser.Enabled)
	assert.Equal(t, 100, cfg.Browser.DelayMS)
}
