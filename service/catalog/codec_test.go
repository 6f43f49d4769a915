package catalog

import (
	"net/url"
	"testing"
)

func TestCodec_DefaultsEncodeEmpty(t *testing.T) {
	qs := EncodeCriteria(DefaultCriteria())
	if qs != "" {
		t.Errorf("default criteria encoded to %q, want empty", qs)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := DefaultCriteria()
	c.Search = "usb cable"
	c.Category = "electronics"
	c.MinPrice = 9.5
	c.MaxPrice = 120
	c.Sort = SortPriceHigh
	c.Page = 3

	got := DecodeCriteria(EncodeCriteria(c))
	if got != c {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, c)
	}
}

func TestCodec_OmitsDefaultFields(t *testing.T) {
	c := DefaultCriteria()
	c.Search = "lamp"
	v := EncodeValues(c)
	if len(v) != 1 || v.Get("search") != "lamp" {
		t.Errorf("expected only search key, got %v", v)
	}
}

func TestDecodeValues_MalformedInputClamps(t *testing.T) {
	v := url.Values{}
	v.Set("minPrice", "-40")
	v.Set("maxPrice", "not-a-number")
	v.Set("sort", "bogus")
	v.Set("page", "0")

	c := DecodeValues(v)
	def := DefaultCriteria()
	if c.MinPrice != 0 || c.MaxPrice != def.MaxPrice {
		t.Errorf("prices: min=%v max=%v", c.MinPrice, c.MaxPrice)
	}
	if c.Sort != SortName {
		t.Errorf("sort = %q, want %q", c.Sort, SortName)
	}
	if c.Page != 1 {
		t.Errorf("page = %d, want 1", c.Page)
	}
}

func TestDecodeValues_SwappedBounds(t *testing.T) {
	v := url.Values{}
	v.Set("minPrice", "200")
	v.Set("maxPrice", "50")
	c := DecodeValues(v)
	if c.MinPrice != 50 || c.MaxPrice != 200 {
		t.Errorf("swap: min=%v max=%v", c.MinPrice, c.MaxPrice)
	}
}

func TestDecodeCriteria_GarbageYieldsDefaults(t *testing.T) {
	c := DecodeCriteria("%zz=;;;")
	if c != DefaultCriteria() {
		t.Errorf("got %+v, want defaults", c)
	}
}
