// Package shopify contains the read-only order schema received from the
// Shopify Admin API, together with the ordered fallback helpers used to
// resolve its alternate monetary fields.
//
// Key concepts:
//   - Order: one order as delivered by Shopify (webhook or REST payload)
//   - LineItem: one purchasable position inside an order
//   - MoneySet: Shopify's nested presentment/shop money wrapper
//
// All monetary values arrive as decimal strings. Parsing is coercive:
// empty or malformed amounts resolve to zero, never to an error. Input
// validation belongs to the surrounding glue code, not to this package.
package shopify
