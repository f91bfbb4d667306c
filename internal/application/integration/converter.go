// Package integration orchestrates the conversion of Shopify orders
// into Bitrix24 deal payloads and records the outcome of each run.
package integration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crmbridge/backend/internal/domain/crm"
	"github.com/crmbridge/backend/internal/domain/mapping"
	"github.com/crmbridge/backend/internal/domain/shopify"
)

// ConversionResult is the outcome of converting one order. Warnings
// carry non-fatal issues encountered during mapping; conversion itself
// cannot fail.
type ConversionResult struct {
	// RecordID identifies this conversion run
	RecordID uuid.UUID `json:"record_id"`
	// OrderID is the Shopify order ID
	OrderID int64 `json:"order_id"`
	// OrderName is the human-facing Shopify order name
	OrderName string `json:"order_name"`
	// Deal is the mapped deal field record
	Deal crm.DealFields `json:"deal"`
	// ProductRows are the mapped product rows, in order
	ProductRows []crm.ProductRow `json:"product_rows"`
	// Warnings lists fallbacks applied during mapping
	Warnings []string `json:"warnings,omitempty"`
	// ConvertedAt is when the conversion ran
	ConvertedAt time.Time `json:"converted_at"`
}

// OrderConverter converts orders with a fixed mapping configuration,
// forwards mapper diagnostics to an injected sink, and logs a summary
// per order. Safe for concurrent use.
type OrderConverter struct {
	cfg    mapping.Config
	logger *zap.Logger
	diag   mapping.Diagnostics
}

// NewOrderConverter creates a converter. A nil logger is replaced with
// a no-op logger, a nil diagnostics sink with a no-op sink.
func NewOrderConverter(cfg mapping.Config, logger *zap.Logger, diag mapping.Diagnostics) *OrderConverter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if diag == nil {
		diag = mapping.NopDiagnostics()
	}
	return &OrderConverter{cfg: cfg, logger: logger, diag: diag}
}

// skuWarnings collects unmapped-SKU diagnostics for one conversion run
// and forwards each to the converter's sink.
type skuWarnings struct {
	next mapping.Diagnostics
	skus []string
}

func (w *skuWarnings) UnmappedSKU(sku string) {
	w.skus = append(w.skus, sku)
	w.next.UnmappedSKU(sku)
}

// Convert maps one order and stamps the result with a record ID and
// timestamp. Unmapped SKUs become warnings on the result; emitting the
// diagnostic line is the injected sink's job.
func (c *OrderConverter) Convert(order *shopify.Order) *ConversionResult {
	collector := &skuWarnings{next: c.diag}
	result := mapping.NewMapper(c.cfg, collector).Map(order)

	var warnings []string
	for _, sku := range collector.skus {
		warnings = append(warnings, fmt.Sprintf("sku %q has no product mapping, fallback product used", sku))
	}

	conversion := &ConversionResult{
		RecordID:    uuid.New(),
		OrderID:     order.ID,
		OrderName:   order.Name,
		Deal:        result.Deal,
		ProductRows: result.ProductRows,
		Warnings:    warnings,
		ConvertedAt: time.Now(),
	}

	c.logger.Info("order converted",
		zap.Int64("order_id", order.ID),
		zap.String("order_name", order.Name),
		zap.String("stage", result.Deal.StageID),
		zap.Int("product_rows", len(result.ProductRows)),
		zap.Int("warnings", len(warnings)),
	)

	return conversion
}
