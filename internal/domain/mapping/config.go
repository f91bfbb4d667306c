package mapping

import (
	"strings"

	"github.com/crmbridge/backend/internal/domain/crm"
)

// Config is the static lookup configuration the mapper reads. It is
// passed by value and never mutated; loading and ownership belong to
// the infrastructure config package.
type Config struct {
	// ProductIDBySKU maps Shopify SKUs to Bitrix24 catalog product IDs
	ProductIDBySKU map[string]int64
	// CategoryID is the deal category (pipeline) for created deals
	CategoryID int64
	// DefaultStageID is the stage used for unknown financial statuses
	DefaultStageID string
	// StageByFinancialStatus maps Shopify financial statuses to stages
	StageByFinancialStatus map[string]string
	// SourceIDBySource maps Shopify source names to lead source IDs
	SourceIDBySource map[string]string
	// ShippingProductID is the catalog product for the shipping row
	ShippingProductID int64
	// DefaultProductID is the placeholder product for unmapped SKUs
	DefaultProductID int64
}

// ProductIDForSKU looks up the catalog product for a SKU. The second
// return value reports whether a positive mapping exists. Lookup is
// case-insensitive: config loaders deliver table keys lowercased, while
// Shopify SKUs are conventionally uppercase.
func (c Config) ProductIDForSKU(sku string) (int64, bool) {
	id, ok := c.ProductIDBySKU[sku]
	if !ok {
		id, ok = c.ProductIDBySKU[strings.ToLower(sku)]
	}
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// StageForStatus resolves the pipeline stage for a financial status:
// status table, then the configured default, then the NEW stage.
func (c Config) StageForStatus(status string) string {
	if stage, ok := c.StageByFinancialStatus[status]; ok && stage != "" {
		return stage
	}
	if c.DefaultStageID != "" {
		return c.DefaultStageID
	}
	return crm.FallbackStageID
}

// SourceIDFor resolves the lead source for a Shopify source name,
// defaulting to the generic web source.
func (c Config) SourceIDFor(source string) string {
	if id, ok := c.SourceIDBySource[source]; ok && id != "" {
		return id
	}
	return crm.DefaultSourceID
}

// fallbackProductID is the product substituted for unmapped SKUs.
func (c Config) fallbackProductID() int64 {
	if c.DefaultProductID > 0 {
		return c.DefaultProductID
	}
	return crm.FallbackProductID
}

// shippingRowProductID is the product used for the shipping row.
func (c Config) shippingRowProductID() int64 {
	if c.ShippingProductID > 0 {
		return c.ShippingProductID
	}
	return crm.FallbackShippingProductID
}
