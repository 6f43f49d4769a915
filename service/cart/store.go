package cart

import (
	"sync"

	cartEntity "storefront.GO/model/entity/cart"
)

// Store is the authoritative client-side line-item set. Only the sync
// controller mutates it; the rendering layer reads through Items/Summary and
// observes changes through Subscribe.
type Store struct {
	mu      sync.RWMutex
	order   []uint
	items   map[uint]cartEntity.LineItem
	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{
		items: make(map[uint]cartEntity.LineItem),
		subs:  make(map[int]func()),
	}
}

// Items returns the line items in insertion order.
func (s *Store) Items() []cartEntity.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]cartEntity.LineItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns one line item.
func (s *Store) Get(productID uint) (cartEntity.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[productID]
	return it, ok
}

// Summary recomputes the derived totals from the current item set.
func (s *Store) Summary(r Rules) cartEntity.Summary {
	return Aggregate(s.Items(), r)
}

// Subscribe registers fn to run after every mutation. The returned function
// unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
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

func (s *Store) notifyLocked() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// set upserts a line item. An existing item keeps its add-time unit price.
func (s *Store) set(productID uint, unitPrice float64, quantity int) {
	s.mu.Lock()
	if existing, ok := s.items[productID]; ok {
		existing.Quantity = quantity
		s.items[productID] = existing
	} else {
		s.items[productID] = cartEntity.LineItem{ProductID: productID, UnitPrice: unitPrice, Quantity: quantity}
		s.order = append(s.order, productID)
	}
	subs := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) remove(productID uint) {
	s.mu.Lock()
	if _, ok := s.items[productID]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	subs := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) clear() {
	s.mu.Lock()
	s.items = make(map[uint]cartEntity.LineItem)
	s.order = nil
	subs := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// replace swaps the whole item set, preserving the given order.
func (s *Store) replace(items []cartEntity.LineItem) {
	s.mu.Lock()
	s.items = make(map[uint]cartEntity.LineItem, len(items))
	s.order = make([]uint, 0, len(items))
	for _, it := range items {
		s.items[it.ProductID] = it
		s.order = append(s.order, it.ProductID)
	}
	subs := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
