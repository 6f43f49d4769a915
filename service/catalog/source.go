package catalog

import (
	"context"
	"sync"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Source produces an ordered result page for a criteria value. Both the
// in-memory and the remote modes implement it with identical ordering
// semantics.
type Source interface {
	Search(ctx context.Context, c Criteria) (*Result, error)
}

// MemorySource filters a locally held full catalog. The snapshot is
// replaceable so a refresh job can swap it without disturbing readers.
type MemorySource struct {
	mu       sync.RWMutex
	products []catalogEntity.Product
}

func NewMemorySource(products []catalogEntity.Product) *MemorySource {
	return &MemorySource{products: products}
}

// SetProducts replaces the catalog snapshot.
func (s *MemorySource) SetProducts(products []catalogEntity.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

func (s *MemorySource) Search(_ context.Context, c Criteria) (*Result, error) {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()
	return Search(products, c), nil
}

// Querier dispatches queries against a source and delivers only the newest
// response. Every dispatch gets a monotonically increasing sequence number;
// a response arriving after a newer query was issued is silently discarded.
// Close marks all in-flight work ignore-on-completion.
type Querier struct {
	src    Source
	mu     sync.Mutex
	seq    uint64
	closed bool
}

func NewQuerier(src Source) *Querier {
	return &Querier{src: src}
}

// Query dispatches asynchronously and calls deliver with the response unless
// it went stale or the querier was closed in the meantime.
func (q *Querier) Query(ctx context.Context, c Criteria, deliver func(*Result, error)) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.seq++
	seq := q.seq
	q.mu.Unlock()

	go func() {
		res, err := q.src.Search(ctx, c)
		q.mu.Lock()
		stale := q.closed || seq != q.seq
		q.mu.Unlock()
		if stale {
			return
		}
		deliver(res, err)
	}()
}

// Close prevents any further delivery. In-flight responses are dropped.
func (q *Querier) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
