package crm

import (
	"github.com/shopspring/decimal"
)

const (
	// FallbackStageID is the pipeline stage used when neither the
	// status table nor the configured default resolves one.
	FallbackStageID = "NEW"
	// DefaultSourceID is the generic web lead source.
	DefaultSourceID = "WEB"
)

// DealFields is the flat field record for a Bitrix24 deal. All values
// are primitives; nullable fields are pointers and serialize as null.
type DealFields struct {
	// Title is the deal title, taken from the order name
	Title string `json:"TITLE"`
	// Opportunity is the deal amount (the order total)
	Opportunity decimal.Decimal `json:"OPPORTUNITY"`
	// CurrencyID is the ISO 4217 currency code
	CurrencyID string `json:"CURRENCY_ID"`
	// Comments carries the free-text order note
	Comments string `json:"COMMENTS,omitempty"`
	// CategoryID is the pipeline (deal category) this deal belongs to
	CategoryID int64 `json:"CATEGORY_ID"`
	// StageID is the pipeline stage resolved from the financial status
	StageID string `json:"STAGE_ID"`
	// SourceID is the lead source enumeration value
	SourceID string `json:"SOURCE_ID"`
	// SourceDescription is the derived channel classification
	SourceDescription string `json:"SOURCE_DESCRIPTION"`

	// User fields provisioned for the Shopify integration
	OrderID       int64           `json:"UF_SHOPIFY_ORDER_ID"`
	CustomerEmail *string         `json:"UF_SHOPIFY_CUSTOMER_EMAIL"`
	CustomerName  *string         `json:"UF_SHOPIFY_CUSTOMER_NAME"`
	TotalDiscount decimal.Decimal `json:"UF_SHOPIFY_TOTAL_DISCOUNT"`
	ShippingPrice decimal.Decimal `json:"UF_SHOPIFY_SHIPPING_PRICE"`
	TotalTax      decimal.Decimal `json:"UF_SHOPIFY_TOTAL_TAX"`
}
