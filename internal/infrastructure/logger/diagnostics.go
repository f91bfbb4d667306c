package logger

import (
	"go.uber.org/zap"

	"github.com/crmbridge/backend/internal/domain/mapping"
)

// SKUDiagnostics emits mapper diagnostics as warning-level log lines.
type SKUDiagnostics struct {
	logger *zap.Logger
}

var _ mapping.Diagnostics = (*SKUDiagnostics)(nil)

// NewSKUDiagnostics creates a diagnostics sink backed by the logger.
func NewSKUDiagnostics(logger *zap.Logger) *SKUDiagnostics {
	return &SKUDiagnostics{logger: logger}
}

// UnmappedSKU logs the unmapped SKU. Advisory only; the log format is
// not a contract.
func (d *SKUDiagnostics) UnmappedSKU(sku string) {
	d.logger.Warn("sku has no product mapping, using fallback product",
		zap.String("sku", sku),
	)
}
