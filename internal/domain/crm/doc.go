// Package crm contains the Bitrix24 deal shapes produced by the bridge.
//
// Key concepts:
//   - DealFields: the flat attribute record of a crm.deal.add call
//   - ProductRow: one row of a crm.deal.productrows.set call
//
// Field names follow the Bitrix24 REST naming verbatim, including the
// UF_SHOPIFY_* user fields provisioned on the target portal.
package crm
