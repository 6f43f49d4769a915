package catalog

import "context"

// Lister is the remote paged-search capability (the listProducts contract).
// Criteria are serialized into query parameters by the caller's transport;
// the returned items and total count are authoritative.
type Lister interface {
	ListProducts(ctx context.Context, c Criteria) (*Result, error)
}

// RemoteSource adapts a Lister into a Source. The engine does not re-filter
// remote results; it trusts the remote set, but normalizes criteria before
// dispatch so malformed values never hit the wire.
type RemoteSource struct {
	lister Lister
}

func NewRemoteSource(l Lister) *RemoteSource {
	return &RemoteSource{lister: l}
}

func (s *RemoteSource) Search(ctx context.Context, c Criteria) (*Result, error) {
	c.Normalize()
	return s.lister.ListProducts(ctx, c)
}
