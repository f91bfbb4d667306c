package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigTOML = `
[app]
name = "crmbridge-test"
env = "production"

[log]
level = "debug"
format = "json"

[mapping]
category_id = 7
default_stage_id = "PREPARATION"
shipping_product_id = 4100
default_product_id = 2900

[mapping.sku_products]
ipod2008green = "42"
socks-basic = "101"

[mapping.stages]
paid = "WON"
pending = "PREPAYMENT_INVOICE"

[mapping.sources]
pos = "STORE"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("loads full config file", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, testConfigTOML))
		require.NoError(t, err)

		assert.Equal(t, "crmbridge-test", cfg.App.Name)
		assert.Equal(t, "production", cfg.App.Env)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)

		assert.Equal(t, int64(7), cfg.Mapping.CategoryID)
		assert.Equal(t, "PREPARATION", cfg.Mapping.DefaultStageID)
		assert.Equal(t, int64(4100), cfg.Mapping.ShippingProductID)
		assert.Equal(t, int64(2900), cfg.Mapping.DefaultProductID)
		assert.Equal(t, map[string]int64{"ipod2008green": 42, "socks-basic": 101}, cfg.Mapping.SKUProducts)
		assert.Equal(t, "WON", cfg.Mapping.Stages["paid"])
		assert.Equal(t, "STORE", cfg.Mapping.Sources["pos"])
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed product id is an error", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "[mapping.sku_products]\nbad = \"forty-two\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid product id")
	})
}

func TestLoad(t *testing.T) {
	envVars := []string{
		"CRMBRIDGE_APP_NAME",
		"CRMBRIDGE_APP_ENV",
		"CRMBRIDGE_LOG_LEVEL",
		"CRMBRIDGE_MAPPING_CATEGORY_ID",
		"CRMBRIDGE_MAPPING_DEFAULT_STAGE_ID",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	t.Run("loads defaults when nothing is configured", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "crmbridge", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.Empty(t, cfg.Mapping.SKUProducts)
		assert.Empty(t, cfg.Mapping.DefaultStageID)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("CRMBRIDGE_APP_NAME", "bridge-staging")
		t.Setenv("CRMBRIDGE_LOG_LEVEL", "warn")
		t.Setenv("CRMBRIDGE_MAPPING_CATEGORY_ID", "9")
		t.Setenv("CRMBRIDGE_MAPPING_DEFAULT_STAGE_ID", "PREPARATION")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "bridge-staging", cfg.App.Name)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, int64(9), cfg.Mapping.CategoryID)
		assert.Equal(t, "PREPARATION", cfg.Mapping.DefaultStageID)
	})
}

func TestMappingConfig_ToDomain(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, testConfigTOML))
	require.NoError(t, err)

	domain := cfg.Mapping.ToDomain()

	assert.Equal(t, int64(7), domain.CategoryID)
	assert.Equal(t, "PREPARATION", domain.DefaultStageID)
	assert.Equal(t, int64(4100), domain.ShippingProductID)
	assert.Equal(t, int64(2900), domain.DefaultProductID)

	id, ok := domain.ProductIDForSKU("ipod2008green")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "WON", domain.StageForStatus("paid"))
	assert.Equal(t, "STORE", domain.SourceIDFor("pos"))
}

func TestMappingConfig_UppercaseSKUs(t *testing.T) {
	// Viper lowercases table keys on load; an uppercase SKU in the
	// config file must still resolve through the domain lookup.
	cfg, err := LoadFile(writeConfig(t, "[mapping.sku_products]\nIPOD2008GREEN = \"42\"\n"))
	require.NoError(t, err)

	id, ok := cfg.Mapping.ToDomain().ProductIDForSKU("IPOD2008GREEN")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}
