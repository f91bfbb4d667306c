// Package config loads application configuration from config files and
// environment variables using viper.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/crmbridge/backend/internal/domain/mapping"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Mapping MappingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// MappingConfig holds the static lookup tables and defaults the order
// mapper reads. Viper lowercases map keys on load; the mapper's SKU
// lookup compensates by matching case-insensitively.
type MappingConfig struct {
	// CategoryID is the Bitrix24 deal category for created deals
	CategoryID int64
	// DefaultStageID is the stage for unknown financial statuses
	DefaultStageID string
	// ShippingProductID is the catalog product for the shipping row
	ShippingProductID int64
	// DefaultProductID is the placeholder product for unmapped SKUs
	DefaultProductID int64
	// SKUProducts maps Shopify SKUs to catalog product IDs
	SKUProducts map[string]int64
	// Stages maps Shopify financial statuses to pipeline stage IDs
	Stages map[string]string
	// Sources maps Shopify source names to lead source IDs
	Sources map[string]string
}

// ToDomain converts the loaded tables into the mapper's configuration.
func (m MappingConfig) ToDomain() mapping.Config {
	return mapping.Config{
		ProductIDBySKU:         m.SKUProducts,
		CategoryID:             m.CategoryID,
		DefaultStageID:         m.DefaultStageID,
		StageByFinancialStatus: m.Stages,
		SourceIDBySource:       m.Sources,
		ShippingProductID:      m.ShippingProductID,
		DefaultProductID:       m.DefaultProductID,
	}
}

// Load reads configuration from multiple sources.
// Priority (highest to lowest):
// 1. Environment variables with CRMBRIDGE_ prefix (e.g., CRMBRIDGE_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	return build(v)
}

// LoadFile reads configuration from an explicit config file path, with
// the same environment override behavior as Load.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	// Enable environment variable override
	v.SetEnvPrefix("CRMBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	skuProducts, err := parseSKUProducts(v.GetStringMapString("mapping.sku_products"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Mapping: MappingConfig{
			CategoryID:        v.GetInt64("mapping.category_id"),
			DefaultStageID:    v.GetString("mapping.default_stage_id"),
			ShippingProductID: v.GetInt64("mapping.shipping_product_id"),
			DefaultProductID:  v.GetInt64("mapping.default_product_id"),
			SKUProducts:       skuProducts,
			Stages:            v.GetStringMapString("mapping.stages"),
			Sources:           v.GetStringMapString("mapping.sources"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

// parseSKUProducts converts the raw sku table into product IDs. A
// malformed product ID is a configuration error, not a mapping one.
func parseSKUProducts(raw map[string]string) (map[string]int64, error) {
	if len(raw) == 0 {
		return map[string]int64{}, nil
	}
	products := make(map[string]int64, len(raw))
	for sku, value := range raw {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q for sku %q: %w", value, sku, err)
		}
		products[sku] = id
	}
	return products, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "crmbridge"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}
