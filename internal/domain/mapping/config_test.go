package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crmbridge/backend/internal/domain/crm"
)

func TestConfig_ProductIDForSKU(t *testing.T) {
	cfg := Config{ProductIDBySKU: map[string]int64{"x": 42, "ghost": 0}}

	t.Run("mapped sku", func(t *testing.T) {
		id, ok := cfg.ProductIDForSKU("x")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("unknown sku", func(t *testing.T) {
		_, ok := cfg.ProductIDForSKU("nope")
		assert.False(t, ok)
	})

	t.Run("uppercase sku matches lowercased table key", func(t *testing.T) {
		// Config loaders lowercase table keys; the order's SKU
		// arrives in its original case.
		lowered := Config{ProductIDBySKU: map[string]int64{"ipod2008green": 42}}
		id, ok := lowered.ProductIDForSKU("IPOD2008GREEN")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("zero mapping counts as unmapped", func(t *testing.T) {
		_, ok := cfg.ProductIDForSKU("ghost")
		assert.False(t, ok)
	})

	t.Run("nil table", func(t *testing.T) {
		_, ok := Config{}.ProductIDForSKU("x")
		assert.False(t, ok)
	})
}

func TestConfig_StageForStatus(t *testing.T) {
	cfg := Config{
		StageByFinancialStatus: map[string]string{"paid": "WON", "void": ""},
		DefaultStageID:         "PREPARATION",
	}

	t.Run("status in table", func(t *testing.T) {
		assert.Equal(t, "WON", cfg.StageForStatus("paid"))
	})

	t.Run("unknown status uses default", func(t *testing.T) {
		assert.Equal(t, "PREPARATION", cfg.StageForStatus("refunded"))
	})

	t.Run("empty table entry uses default", func(t *testing.T) {
		assert.Equal(t, "PREPARATION", cfg.StageForStatus("void"))
	})

	t.Run("no table and no default falls back to NEW", func(t *testing.T) {
		assert.Equal(t, crm.FallbackStageID, Config{}.StageForStatus("paid"))
	})
}

func TestConfig_SourceIDFor(t *testing.T) {
	cfg := Config{SourceIDBySource: map[string]string{"pos": "STORE"}}

	t.Run("source in table", func(t *testing.T) {
		assert.Equal(t, "STORE", cfg.SourceIDFor("pos"))
	})

	t.Run("unknown source defaults to web", func(t *testing.T) {
		assert.Equal(t, crm.DefaultSourceID, cfg.SourceIDFor("iphone"))
		assert.Equal(t, crm.DefaultSourceID, Config{}.SourceIDFor(""))
	})
}

func TestConfig_FallbackProducts(t *testing.T) {
	t.Run("built-in fallbacks", func(t *testing.T) {
		cfg := Config{}
		assert.Equal(t, int64(crm.FallbackProductID), cfg.fallbackProductID())
		assert.Equal(t, int64(crm.FallbackShippingProductID), cfg.shippingRowProductID())
	})

	t.Run("configured products win", func(t *testing.T) {
		cfg := Config{DefaultProductID: 555, ShippingProductID: 4100}
		assert.Equal(t, int64(555), cfg.fallbackProductID())
		assert.Equal(t, int64(4100), cfg.shippingRowProductID())
	})
}
