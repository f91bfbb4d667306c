// Package mapping converts Shopify orders into Bitrix24 deal fields and
// product rows.
//
// The mapper is a pure function over its inputs: configuration is an
// explicit immutable parameter, diagnostics go through an injected
// collector, and mapping never fails. Missing or malformed input fields
// degrade to zero, null, or a documented fallback constant instead of
// producing errors.
package mapping
