package catalog

import (
	"strings"
	"sync"

	"storefront.GO/config"
)

// Sort keys. Tokens match the query-string representation.
const (
	SortName      = "name"       // display name ascending
	SortPriceLow  = "price-low"  // price ascending
	SortPriceHigh = "price-high" // price descending
	SortRating    = "rating"     // rating descending, name ascending on ties
)

func validSort(s string) bool {
	switch s {
	case SortName, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// Criteria is the full set of filter/sort/pagination parameters for one
// catalog query.
type Criteria struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	Sort     string  `json:"sort"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// DefaultCriteria returns the view-entry criteria: everything passes, name
// sort, first page.
func DefaultCriteria() Criteria {
	p := config.GetPricing()
	return Criteria{
		MaxPrice: p.PriceCeiling,
		Sort:     SortName,
		Page:     1,
		PageSize: p.PageSize,
	}
}

// Normalize corrects malformed fields in place: trimmed search, price bounds
// clamped to [0, ceiling] with min <= max, whitelisted sort key, page >= 1.
// Validation never surfaces as a failure; bad input is clamped here.
func (c *Criteria) Normalize() {
	p := config.GetPricing()
	c.Search = strings.TrimSpace(c.Search)
	c.Category = strings.TrimSpace(c.Category)
	c.Brand = strings.TrimSpace(c.Brand)
	if c.MinPrice < 0 {
		c.MinPrice = 0
	}
	if c.MinPrice > p.PriceCeiling {
		c.MinPrice = p.PriceCeiling
	}
	if c.MaxPrice <= 0 || c.MaxPrice > p.PriceCeiling {
		c.MaxPrice = p.PriceCeiling
	}
	if c.MinPrice > c.MaxPrice {
		c.MinPrice, c.MaxPrice = c.MaxPrice, c.MinPrice
	}
	if !validSort(c.Sort) {
		c.Sort = SortName
	}
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = p.PageSize
	}
}

// Store owns the current criteria for one catalog view. All mutation goes
// through the setters; every filter or sort change resets the page to 1 so a
// stale page over a new result set is never shown. Subscribers are notified
// after each change.
type Store struct {
	mu      sync.Mutex
	c       Criteria
	subs    map[int]func(Criteria)
	nextSub int
}

func NewStore() *Store {
	return &Store{
		c:    DefaultCriteria(),
		subs: make(map[int]func(Criteria)),
	}
}

// Get returns a copy of the current criteria.
func (s *Store) Get() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c
}

// Subscribe registers fn to run after every criteria change. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func(Criteria)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(resetPage bool, mutate func(*Criteria)) {
	s.mu.Lock()
	mutate(&s.c)
	if resetPage {
		s.c.Page = 1
	}
	s.c.Normalize()
	c := s.c
	subs := make([]func(Criteria), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(c)
	}
}

func (s *Store) SetSearch(term string) {
	s.update(true, func(c *Criteria) { c.Search = term })
}

func (s *Store) SetCategory(category string) {
	s.update(true, func(c *Criteria) { c.Category = category })
}

func (s *Store) SetBrand(brand string) {
	s.update(true, func(c *Criteria) { c.Brand = brand })
}

func (s *Store) SetPriceBounds(min, max float64) {
	s.update(true, func(c *Criteria) {
		c.MinPrice = min
		c.MaxPrice = max
	})
}

func (s *Store) SetSort(sort string) {
	s.update(true, func(c *Criteria) { c.Sort = sort })
}

// SetPage changes only the page; it is the one mutation that keeps it.
func (s *Store) SetPage(page int) {
	s.update(false, func(c *Criteria) { c.Page = page })
}

// Reset puts the store back to view-entry defaults.
func (s *Store) Reset() {
	s.update(false, func(c *Criteria) { *c = DefaultCriteria() })
}

// Restore replaces the criteria wholesale, e.g. from a decoded URL.
func (s *Store) Restore(c Criteria) {
	s.update(false, func(cur *Criteria) { *cur = c })
}
