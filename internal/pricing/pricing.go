// Package pricing computes basket totals with tiered bulk offers.
// All arithmetic is exact integer math over minor currency units.
package pricing

import (
	"context"

	"quickbasket/internal/domain"
)

// Lookup resolves a product by SKU. An absent product returns ok=false
// with a nil error; errors are reserved for store failures.
type Lookup func(ctx context.Context, sku string) (domain.Product, bool, error)

// PriceFor prices quantity units of a product. Full offer bundles are
// charged at the bundle price, the remainder at the unit price. Below
// the offer quantity the unit price always applies.
func PriceFor(p domain.Product, quantity int) int {
	if p.HasSpecialOffer() && quantity >= *p.OfferQuantity {
		bundles := quantity / *p.OfferQuantity
		remainder := quantity % *p.OfferQuantity
		return bundles*(*p.OfferPrice) + remainder*p.UnitPrice
	}
	return quantity * p.UnitPrice
}

// TotalFor sums PriceFor over every line of items. A SKU the lookup no
// longer knows contributes zero rather than failing the whole basket;
// a lookup failure aborts with that error.
func TotalFor(ctx context.Context, items map[string]int, lookup Lookup) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	total := 0
	for sku, qty := range items {
		p, ok, err := lookup(ctx, sku)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		total += PriceFor(p, qty)
	}
	return total, nil
}
