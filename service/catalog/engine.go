package catalog

import (
	"sort"
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Result is one ordered page of products plus the pre-pagination match count.
type Result struct {
	Items      []catalogEntity.Product `json:"items"`
	TotalCount int                     `json:"totalCount"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
}

// Matches reports whether a product satisfies every active predicate in c.
// The search term matches as a case-insensitive substring of name, brand, or
// description; category and brand are exact; price bounds are inclusive.
func Matches(p *catalogEntity.Product, c *Criteria) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Brand != "" && p.Brand != c.Brand {
		return false
	}
	if p.Price < c.MinPrice || p.Price > c.MaxPrice {
		return false
	}
	return true
}

// Search runs the in-memory mode: filter, stable sort, paginate. The input
// slice is never mutated. An empty result is a valid outcome, not an error.
func Search(products []catalogEntity.Product, c Criteria) *Result {
	c.Normalize()

	filtered := make([]catalogEntity.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], &c) {
			filtered = append(filtered, products[i])
		}
	}

	sortProducts(filtered, c.Sort)

	total := len(filtered)
	start := (c.Page - 1) * c.PageSize
	if start > total {
		start = total
	}
	end := start + c.PageSize
	if end > total {
		end = total
	}

	return &Result{
		Items:      filtered[start:end],
		TotalCount: total,
		Page:       c.Page,
		PageSize:   c.PageSize,
	}
}

func nameLess(a, b *catalogEntity.Product) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// sortProducts sorts in place, stably, by the given key. Rating ties break
// by name ascending so the order is deterministic across calls.
func sortProducts(products []catalogEntity.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Rating != products[j].Rating {
				return products[i].Rating > products[j].Rating
			}
			return nameLess(&products[i], &products[j])
		})
	default: // SortName
		sort.SliceStable(products, func(i, j int) bool {
			return nameLess(&products[i], &products[j])
		})
	}
}
