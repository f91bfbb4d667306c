package crm

import (
	"github.com/shopspring/decimal"
)

const (
	// DiscountTypeMonetary is the Bitrix24 discount type for absolute
	// (monetary) discounts, as opposed to percentage discounts.
	DiscountTypeMonetary = 1

	// FallbackProductID is the placeholder catalog product substituted
	// for unmapped SKUs.
	FallbackProductID = 2900
	// FallbackShippingProductID is the catalog product representing
	// shipping when none is configured.
	FallbackShippingProductID = 3000

	// TaxIncludedYes and TaxIncludedNo are the Bitrix24 encodings of
	// the tax-included flag.
	TaxIncludedYes = "Y"
	TaxIncludedNo  = "N"
)

// DefaultTaxRate is the tax rate in percent applied when neither the
// line item nor the order carries a tax line.
var DefaultTaxRate = decimal.NewFromFloat(19.0)

// ProductRow is one product row attached to a deal. Quantity is always
// one: quantities are expanded into repeated rows, never represented as
// a multiplier. PriceBrutto and DiscountRate are present on rows derived
// from line items and absent on the synthetic shipping row.
type ProductRow struct {
	// ProductID is the catalog product this row refers to
	ProductID int64 `json:"PRODUCT_ID"`
	// Price is the net unit price after discount
	Price decimal.Decimal `json:"PRICE"`
	// PriceBrutto is the gross unit price before discount
	PriceBrutto *decimal.Decimal `json:"PRICE_BRUTTO,omitempty"`
	// Quantity is always 1
	Quantity int `json:"QUANTITY"`
	// DiscountTypeID is always the monetary discount type
	DiscountTypeID int `json:"DISCOUNT_TYPE_ID"`
	// DiscountSum is the absolute discount on this row
	DiscountSum decimal.Decimal `json:"DISCOUNT_SUM"`
	// DiscountRate is the discount in percent of the gross price
	DiscountRate *decimal.Decimal `json:"DISCOUNT_RATE,omitempty"`
	// TaxIncluded is "Y" or "N" from the order's taxes-included flag
	TaxIncluded string `json:"TAX_INCLUDED"`
	// TaxRate is the tax rate in percent
	TaxRate decimal.Decimal `json:"TAX_RATE"`
}
