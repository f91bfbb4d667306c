package shopify

import (
	"github.com/shopspring/decimal"
)

// Money is a single monetary value with its currency, as nested inside
// Shopify price sets.
type Money struct {
	// Amount is the decimal amount as a string (e.g. "129.90")
	Amount string `json:"amount"`
	// CurrencyCode is the ISO 4217 currency code
	CurrencyCode string `json:"currency_code"`
}

// MoneySet wraps the shop-currency and presentment-currency views of the
// same value. The bridge only ever reads the shop money side.
type MoneySet struct {
	// ShopMoney is the value in the shop's own currency
	ShopMoney Money `json:"shop_money"`
	// PresentmentMoney is the value in the buyer-facing currency
	PresentmentMoney Money `json:"presentment_money"`
}

// ShopAmount returns the raw shop-money amount string. Safe on a nil
// receiver, in which case it returns the empty string (undefined).
func (s *MoneySet) ShopAmount() string {
	if s == nil {
		return ""
	}
	return s.ShopMoney.Amount
}

// Amount parses a Shopify decimal money string. Empty and malformed
// values coerce to zero.
func Amount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FirstAmount resolves an ordered fallback chain of amount strings:
// the first non-empty value wins, an exhausted chain resolves to zero.
func FirstAmount(values ...string) decimal.Decimal {
	for _, v := range values {
		if v != "" {
			return Amount(v)
		}
	}
	return decimal.Zero
}
