package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Pricing holds the storefront pricing and query constants. Values are fixed
// per deployment; env vars override the defaults at startup.
type Pricing struct {
	FreeShippingThreshold float64       // subtotal above this ships free
	FlatShippingRate      float64       // flat fee below the threshold
	TaxRate               float64       // applied to the subtotal
	PageSize              int           // catalog page size
	PriceCeiling          float64       // upper clamp for price-bound filters
	DebounceQuiet         time.Duration // quiet period for search input
}

var (
	pricing     *Pricing
	pricingOnce sync.Once
)

// GetPricing returns the global pricing configuration.
func GetPricing() *Pricing {
	pricingOnce.Do(func() {
		pricing = &Pricing{
			FreeShippingThreshold: envFloat("FREE_SHIPPING_THRESHOLD", 50),
			FlatShippingRate:      envFloat("FLAT_SHIPPING_RATE", 9.99),
			TaxRate:               envFloat("TAX_RATE", 0.08),
			PageSize:              envInt("CATALOG_PAGE_SIZE", 20),
			PriceCeiling:          envFloat("PRICE_CEILING", 3000),
			DebounceQuiet:         time.Duration(envInt("SEARCH_DEBOUNCE_MS", 400)) * time.Millisecond,
		}
	})
	return pricing
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
