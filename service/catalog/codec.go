package catalog

import (
	"net/url"
	"strconv"
)

// Query-string keys for the criteria representation.
const (
	keySearch   = "search"
	keyCategory = "category"
	keyBrand    = "brand"
	keyMinPrice = "minPrice"
	keyMaxPrice = "maxPrice"
	keySort     = "sort"
	keyPage     = "page"
)

// EncodeValues maps criteria onto url.Values. Fields holding their default
// are omitted entirely, keeping shared URLs minimal.
func EncodeValues(c Criteria) url.Values {
	c.Normalize()
	def := DefaultCriteria()
	v := url.Values{}
	if c.Search != "" {
		v.Set(keySearch, c.Search)
	}
	if c.Category != "" {
		v.Set(keyCategory, c.Category)
	}
	if c.Brand != "" {
		v.Set(keyBrand, c.Brand)
	}
	if c.MinPrice != def.MinPrice {
		v.Set(keyMinPrice, formatPrice(c.MinPrice))
	}
	if c.MaxPrice != def.MaxPrice {
		v.Set(keyMaxPrice, formatPrice(c.MaxPrice))
	}
	if c.Sort != def.Sort {
		v.Set(keySort, c.Sort)
	}
	if c.Page != def.Page {
		v.Set(keyPage, strconv.Itoa(c.Page))
	}
	return v
}

// EncodeCriteria renders criteria as a query string.
func EncodeCriteria(c Criteria) string {
	return EncodeValues(c).Encode()
}

// DecodeValues rebuilds criteria from url.Values, substituting defaults for
// absent fields and clamping malformed numerics. decode(encode(c)) == c for
// any canonical c.
func DecodeValues(v url.Values) Criteria {
	c := DefaultCriteria()
	c.Search = v.Get(keySearch)
	c.Category = v.Get(keyCategory)
	c.Brand = v.Get(keyBrand)
	if raw := v.Get(keyMinPrice); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			c.MinPrice = f
		}
	}
	if raw := v.Get(keyMaxPrice); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			c.MaxPrice = f
		}
	}
	if s := v.Get(keySort); s != "" {
		c.Sort = s
	}
	if raw := v.Get(keyPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			c.Page = n
		}
	}
	c.Normalize()
	return c
}

// DecodeCriteria parses a query string into criteria. Unparsable input
// yields the defaults.
func DecodeCriteria(qs string) Criteria {
	v, err := url.ParseQuery(qs)
	if err != nil {
		return DefaultCriteria()
	}
	return DecodeValues(v)
}

func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
