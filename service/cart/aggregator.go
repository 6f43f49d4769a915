package cart

import (
	"math"

	"storefront.GO/config"
	cartEntity "storefront.GO/model/entity/cart"
)

// Rules holds the pricing constants the aggregator applies.
type Rules struct {
	FreeShippingThreshold float64
	FlatShippingRate      float64
	TaxRate               float64
}

// DefaultRules returns the configured pricing rules.
func DefaultRules() Rules {
	p := config.GetPricing()
	return Rules{
		FreeShippingThreshold: p.FreeShippingThreshold,
		FlatShippingRate:      p.FlatShippingRate,
		TaxRate:               p.TaxRate,
	}
}

// Aggregate derives the cart summary from a line-item set. Pure function:
// shipping is 0 iff the subtotal exceeds the free-shipping threshold (an
// empty cart ships nothing); tax applies to the subtotal; the grand total is
// the exact sum of the three. Nothing is rounded here; rounding happens
// once, at presentation, so repeated recomputation never compounds error.
func Aggregate(items []cartEntity.LineItem, r Rules) cartEntity.Summary {
	var s cartEntity.Summary
	for _, it := range items {
		s.TotalQuantity += it.Quantity
		s.Subtotal += it.UnitPrice * float64(it.Quantity)
	}
	if len(items) > 0 && s.Subtotal <= r.FreeShippingThreshold {
		s.Shipping = r.FlatShippingRate
	}
	s.Tax = s.Subtotal * r.TaxRate
	s.GrandTotal = s.Subtotal + s.Shipping + s.Tax
	return s
}

// Round2 rounds to two decimal places. Presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a presentation copy of the summary with all monetary
// fields rounded to two decimals.
func Rounded(s cartEntity.Summary) cartEntity.Summary {
	s.Subtotal = Round2(s.Subtotal)
	s.Shipping = Round2(s.Shipping)
	s.Tax = Round2(s.Tax)
	s.GrandTotal = Round2(s.GrandTotal)
	return s
}
