package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crmbridge/backend/internal/domain/crm"
	"github.com/crmbridge/backend/internal/domain/shopify"
)

// Channel classifications stored verbatim in the deal's source
// description. Independent of the lead source ID lookup.
const (
	ChannelOffline = "offline (pre-order)"
	ChannelOnline  = "online (stock)"
)

var hundred = decimal.NewFromInt(100)

// Result is the output of mapping one order: the flat deal field record
// and the ordered product rows.
type Result struct {
	Deal        crm.DealFields   `json:"deal"`
	ProductRows []crm.ProductRow `json:"product_rows"`
}

// Mapper converts Shopify orders into Bitrix24 deals. It holds no
// mutable state and is safe for concurrent use.
type Mapper struct {
	cfg  Config
	diag Diagnostics
}

// NewMapper creates a mapper with the given configuration. A nil
// diagnostics collector is replaced with a no-op one.
func NewMapper(cfg Config, diag Diagnostics) *Mapper {
	if diag == nil {
		diag = NopDiagnostics()
	}
	return &Mapper{cfg: cfg, diag: diag}
}

// Map converts one order. It never fails: missing or malformed fields
// degrade to zero, null, or a documented fallback.
func (m *Mapper) Map(order *shopify.Order) *Result {
	shipping := order.ShippingAmount()

	deal := crm.DealFields{
		Title:             orderTitle(order),
		Opportunity:       order.TotalPriceAmount(),
		CurrencyID:        order.Currency,
		Comments:          order.Note,
		CategoryID:        m.cfg.CategoryID,
		StageID:           m.cfg.StageForStatus(order.FinancialStatus),
		SourceID:          m.cfg.SourceIDFor(order.SourceName),
		SourceDescription: classifyChannel(order.SourceName),
		OrderID:           order.ID,
		CustomerEmail:     customerEmail(order),
		CustomerName:      customerName(order),
		TotalDiscount:     order.TotalDiscountAmount(),
		ShippingPrice:     shipping,
		TotalTax:          order.TotalTaxAmount(),
	}

	taxIncluded := crm.TaxIncludedNo
	if order.TaxesIncluded {
		taxIncluded = crm.TaxIncludedYes
	}

	rows := make([]crm.ProductRow, 0, len(order.LineItems))
	for idx := range order.LineItems {
		rows = append(rows, m.lineItemRows(&order.LineItems[idx], order, taxIncluded)...)
	}
	if shipping.IsPositive() {
		rows = append(rows, crm.ProductRow{
			ProductID:      m.cfg.shippingRowProductID(),
			Price:          shipping,
			Quantity:       1,
			DiscountTypeID: crm.DiscountTypeMonetary,
			DiscountSum:    decimal.Zero,
			TaxIncluded:    taxIncluded,
			TaxRate:        crm.DefaultTaxRate,
		})
	}

	return &Result{Deal: deal, ProductRows: rows}
}

// lineItemRows expands one line item into quantity identical unit rows.
func (m *Mapper) lineItemRows(item *shopify.LineItem, order *shopify.Order, taxIncluded string) []crm.ProductRow {
	productID, ok := m.cfg.ProductIDForSKU(item.SKU)
	if !ok {
		productID = m.cfg.fallbackProductID()
		m.diag.UnmappedSKU(item.SKU)
	}

	brutto := item.UnitPriceAmount()
	discount := item.DiscountAmount()
	price := brutto.Sub(discount)

	rate := decimal.Zero
	if brutto.IsPositive() {
		rate = discount.Div(brutto).Mul(hundred)
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	rows := make([]crm.ProductRow, 0, quantity)
	for n := 0; n < quantity; n++ {
		b := brutto
		r := rate
		rows = append(rows, crm.ProductRow{
			ProductID:      productID,
			Price:          price,
			PriceBrutto:    &b,
			Quantity:       1,
			DiscountTypeID: crm.DiscountTypeMonetary,
			DiscountSum:    discount,
			DiscountRate:   &r,
			TaxIncluded:    taxIncluded,
			TaxRate:        m.taxRate(item, order),
		})
	}
	return rows
}

// taxRate resolves the rate in percent: line tax line, then order tax
// line, then the default rate.
func (m *Mapper) taxRate(item *shopify.LineItem, order *shopify.Order) decimal.Decimal {
	if rate, ok := item.FirstTaxRate(); ok {
		return decimal.NewFromFloat(rate).Mul(hundred)
	}
	if rate, ok := order.FirstTaxRate(); ok {
		return decimal.NewFromFloat(rate).Mul(hundred)
	}
	return crm.DefaultTaxRate
}

// classifyChannel derives the source description from the sales channel.
func classifyChannel(source string) string {
	if source == shopify.SourcePOS {
		return ChannelOffline
	}
	return ChannelOnline
}

func orderTitle(order *shopify.Order) string {
	if order.Name != "" {
		return order.Name
	}
	return fmt.Sprintf("Order %d", order.ID)
}

func customerName(order *shopify.Order) *string {
	if order.Customer == nil {
		return nil
	}
	name := order.Customer.FullName()
	if name == "" {
		return nil
	}
	return &name
}

func customerEmail(order *shopify.Order) *string {
	email := order.Email
	if order.Customer != nil && order.Customer.Email != "" {
		email = order.Customer.Email
	}
	if email == "" {
		return nil
	}
	return &email
}
