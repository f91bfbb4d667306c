package mapping

// Diagnostics receives advisory signals emitted during mapping. The
// signals never alter control flow; mapping proceeds with fallbacks.
type Diagnostics interface {
	// UnmappedSKU reports a SKU with no product mapping. The mapper
	// substitutes the fallback product and continues.
	UnmappedSKU(sku string)
}

type nopDiagnostics struct{}

func (nopDiagnostics) UnmappedSKU(string) {}

// NopDiagnostics returns a Diagnostics that discards all signals.
func NopDiagnostics() Diagnostics {
	return nopDiagnostics{}
}
