package shopify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SourcePOS is the source_name Shopify assigns to orders placed through
// its point-of-sale channel.
const SourcePOS = "pos"

// Order represents one order as received from the Shopify Admin API.
type Order struct {
	// ID is the numeric order ID assigned by Shopify
	ID int64 `json:"id"`
	// Name is the human-facing order name (e.g. "#1001")
	Name string `json:"name"`
	// Email is the order-level contact email
	Email string `json:"email"`
	// Note is the free-text note attached by the buyer or staff
	Note string `json:"note"`
	// Currency is the shop currency for this order
	Currency string `json:"currency"`
	// FinancialStatus is the payment state (e.g. "paid", "pending")
	FinancialStatus string `json:"financial_status"`
	// SourceName identifies the sales channel (e.g. "web", "pos")
	SourceName string `json:"source_name"`
	// TaxesIncluded reports whether prices already contain tax
	TaxesIncluded bool `json:"taxes_included"`

	// Monetary totals. Shopify exposes both the "current" (post-edit)
	// and the original value for most totals; the current one wins.
	CurrentTotalPrice     string `json:"current_total_price"`
	TotalPrice            string `json:"total_price"`
	CurrentTotalDiscounts string `json:"current_total_discounts"`
	TotalDiscounts        string `json:"total_discounts"`
	CurrentTotalTax       string `json:"current_total_tax"`

	// Shipping totals, most specific first
	CurrentShippingPriceSet *MoneySet      `json:"current_shipping_price_set,omitempty"`
	TotalShippingPriceSet   *MoneySet      `json:"total_shipping_price_set,omitempty"`
	ShippingPrice           string         `json:"shipping_price,omitempty"`
	ShippingLines           []ShippingLine `json:"shipping_lines,omitempty"`

	// TaxLines are the order-level tax lines
	TaxLines []TaxLine `json:"tax_lines,omitempty"`
	// Customer is the buyer record, absent for guest checkouts
	Customer *Customer `json:"customer,omitempty"`
	// LineItems are the purchased positions, in order
	LineItems []LineItem `json:"line_items"`
}

// Customer is the buyer sub-record of an order.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName joins first and last name with a single space and trims the
// result. Returns the empty string when both parts are blank.
func (c *Customer) FullName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// LineItem is one purchasable position inside an order.
type LineItem struct {
	// SKU is the stock keeping unit of the purchased variant
	SKU string `json:"sku"`
	// Title is the product title
	Title string `json:"title"`
	// Price is the unit price as a decimal string
	Price string `json:"price"`
	// PriceSet carries the unit price as a money set
	PriceSet *MoneySet `json:"price_set,omitempty"`
	// TotalDiscount is the legacy line-level discount total
	TotalDiscount string `json:"total_discount"`
	// DiscountAllocations attribute order-level discounts to this line
	DiscountAllocations []DiscountAllocation `json:"discount_allocations,omitempty"`
	// TaxLines are the line-level tax lines
	TaxLines []TaxLine `json:"tax_lines,omitempty"`
	// Quantity is the number of units purchased
	Quantity int `json:"quantity"`
}

// DiscountAllocation is the portion of an order-level discount
// attributed to one line item.
type DiscountAllocation struct {
	Amount    string    `json:"amount"`
	AmountSet *MoneySet `json:"amount_set,omitempty"`
}

// TaxLine is a single tax applied to an order or line item.
type TaxLine struct {
	Title string `json:"title"`
	// Price is the tax amount as a decimal string
	Price string `json:"price"`
	// Rate is the tax rate as a fraction (0.19 for 19%)
	Rate float64 `json:"rate"`
}

// ShippingLine is one shipping method charged on the order.
type ShippingLine struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

// TotalPriceAmount resolves the order total: current total price, then
// the original total price, then zero.
func (o *Order) TotalPriceAmount() decimal.Decimal {
	return FirstAmount(o.CurrentTotalPrice, o.TotalPrice)
}

// TotalDiscountAmount resolves the order-level discount total.
func (o *Order) TotalDiscountAmount() decimal.Decimal {
	return FirstAmount(o.CurrentTotalDiscounts, o.TotalDiscounts)
}

// TotalTaxAmount resolves the order-level tax total.
func (o *Order) TotalTaxAmount() decimal.Decimal {
	return Amount(o.CurrentTotalTax)
}

// ShippingAmount resolves the shipping price: current shipping money
// set, then the original shipping money set, then the flat shipping
// price field, then the first shipping line, then zero.
func (o *Order) ShippingAmount() decimal.Decimal {
	values := []string{
		o.CurrentShippingPriceSet.ShopAmount(),
		o.TotalShippingPriceSet.ShopAmount(),
		o.ShippingPrice,
	}
	if len(o.ShippingLines) > 0 {
		values = append(values, o.ShippingLines[0].Price)
	}
	return FirstAmount(values...)
}

// FirstTaxRate returns the rate of the first order-level tax line. The
// second return value reports whether any tax line is present.
func (o *Order) FirstTaxRate() (float64, bool) {
	if len(o.TaxLines) == 0 {
		return 0, false
	}
	return o.TaxLines[0].Rate, true
}

// UnitPriceAmount resolves the unit price: the flat price field, then
// the shop money amount of the price set, then zero.
func (i *LineItem) UnitPriceAmount() decimal.Decimal {
	return FirstAmount(i.Price, i.PriceSet.ShopAmount())
}

// DiscountAmount resolves the discount for this line: the first
// discount allocation's amount, then that allocation's shop money
// amount, then the legacy total discount field, then zero.
func (i *LineItem) DiscountAmount() decimal.Decimal {
	if len(i.DiscountAllocations) > 0 {
		alloc := i.DiscountAllocations[0]
		if alloc.Amount != "" || alloc.AmountSet.ShopAmount() != "" {
			return FirstAmount(alloc.Amount, alloc.AmountSet.ShopAmount())
		}
	}
	return Amount(i.TotalDiscount)
}

// FirstTaxRate returns the rate of the first line-level tax line. The
// second return value reports whether any tax line is present.
func (i *LineItem) FirstTaxRate() (float64, bool) {
	if len(i.TaxLines) == 0 {
		return 0, false
	}
	return i.TaxLines[0].Rate, true
}
