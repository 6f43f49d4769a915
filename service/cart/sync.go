package cart

import (
	"context"
	"fmt"
	"sync"

	cartEntity "storefront.GO/model/entity/cart"
)

// Backend is the remote cart contract the controller drives.
type Backend interface {
	FetchCart(ctx context.Context) ([]cartEntity.LineItem, error)
	UpdateItemQuantity(ctx context.Context, productID uint, quantity int) error
	RemoveItem(ctx context.Context, productID uint) error
	FlushCart(ctx context.Context) error
}

// Phase is the sync state of one line item.
type Phase int

const (
	PhaseIdle    Phase = iota // no outstanding remote work, local == committed
	PhasePending              // optimistic local value applied, remote call outstanding
	PhaseFailed               // remote call failed; optimistic value retained
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ItemError surfaces a failed remote mutation to the caller. The optimistic
// local value stays in place; retrying the same operation is safe.
type ItemError struct {
	ProductID uint
	Op        string
	Err       error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("cart sync: %s product %d: %v", e.Op, e.ProductID, e.Err)
}

func (e ItemError) Unwrap() error { return e.Err }

type pendingOp struct {
	remove   bool
	quantity int
}

type itemState struct {
	inflight bool
	next     *pendingOp
	phase    Phase
}

// SyncController mediates optimistic mutation of the local store against the
// remote cart. Per item, at most one remote call is in flight; overlapping
// edits coalesce latest-wins, so two back-to-back edits never commit out of
// order. Failures keep the optimistic local value and surface an ItemError,
// never a silent revert.
type SyncController struct {
	store   *Store
	backend Backend
	onError func(ItemError)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	states map[uint]*itemState
	closed bool
}

// NewSyncController wires a controller over store and backend. onError may
// be nil; it is invoked outside any lock.
func NewSyncController(store *Store, backend Backend, onError func(ItemError)) *SyncController {
	ctx, cancel := context.WithCancel(context.Background())
	if onError == nil {
		onError = func(ItemError) {}
	}
	return &SyncController{
		store:   store,
		backend: backend,
		onError: onError,
		ctx:     ctx,
		cancel:  cancel,
		states:  make(map[uint]*itemState),
	}
}

// Store returns the line-item store the controller owns.
func (c *SyncController) Store() *Store { return c.store }

// Phase returns the sync phase of one item.
func (c *SyncController) Phase(productID uint) Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.states[productID]; ok {
		return st.phase
	}
	return PhaseIdle
}

// SetQuantity applies a quantity edit optimistically and schedules the
// matching remote update. A target below 1 is a removal, not a stored state.
func (c *SyncController) SetQuantity(productID uint, unitPrice float64, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	c.store.set(productID, unitPrice, quantity)
	c.enqueue(productID, pendingOp{quantity: quantity})
}

// Remove deletes the line item locally and schedules the remote delete.
func (c *SyncController) Remove(productID uint) {
	c.store.remove(productID)
	c.enqueue(productID, pendingOp{remove: true})
}

func (c *SyncController) enqueue(productID uint, op pendingOp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	st, ok := c.states[productID]
	if !ok {
		st = &itemState{}
		c.states[productID] = st
	}
	st.phase = PhasePending
	st.next = &op // latest wins; an unsent earlier target is superseded
	if !st.inflight {
		st.inflight = true
		c.wg.Add(1)
		go c.drain(productID, st)
	}
}

// drain issues remote calls for one item until its queue empties. It is the
// only goroutine touching the wire for this item.
func (c *SyncController) drain(productID uint, st *itemState) {
	defer c.wg.Done()
	for {
		c.mu.Lock()
		if c.closed {
			st.inflight = false
			c.mu.Unlock()
			return
		}
		op := st.next
		st.next = nil
		if op == nil {
			st.inflight = false
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		var err error
		opName := "update"
		if op.remove {
			opName = "remove"
			err = c.backend.RemoveItem(c.ctx, productID)
		} else {
			err = c.backend.UpdateItemQuantity(c.ctx, productID, op.quantity)
		}

		c.mu.Lock()
		if c.closed {
			// view is gone: the result must not mutate state
			st.inflight = false
			c.mu.Unlock()
			return
		}
		if err != nil {
			st.phase = PhaseFailed
			c.mu.Unlock()
			c.onError(ItemError{ProductID: productID, Op: opName, Err: err})
			continue
		}
		if st.next == nil {
			st.phase = PhaseIdle // committed
		}
		c.mu.Unlock()
	}
}

// Clear empties the cart locally and issues a single remote flush instead of
// one delete per item. Queued per-item edits are dropped.
func (c *SyncController) Clear() {
	c.store.clear()
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	for id, st := range c.states {
		st.next = nil
		if !st.inflight {
			delete(c.states, id)
		}
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		err := c.backend.FlushCart(c.ctx)
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed || err == nil {
			return
		}
		c.onError(ItemError{Op: "flush", Err: err})
	}()
}

// Refresh pulls the remote snapshot and merges it into the local store. The
// remote response supersedes local state except for items with edits still
// in flight (pending or failed), whose local values win.
func (c *SyncController) Refresh(ctx context.Context) error {
	remote, err := c.backend.FetchCart(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	busy := func(id uint) bool {
		st, ok := c.states[id]
		return ok && (st.inflight || st.next != nil || st.phase == PhaseFailed)
	}
	merged := make([]cartEntity.LineItem, 0, len(remote))
	seen := make(map[uint]bool, len(remote))
	for _, it := range remote {
		seen[it.ProductID] = true
		if busy(it.ProductID) {
			if local, ok := c.store.Get(it.ProductID); ok {
				merged = append(merged, local)
			}
			// busy but locally removed: the in-flight delete wins
			continue
		}
		merged = append(merged, it)
	}
	for _, local := range c.store.Items() {
		if !seen[local.ProductID] && busy(local.ProductID) {
			merged = append(merged, local)
		}
	}
	c.mu.Unlock()

	c.store.replace(merged)
	return nil
}

// Wait blocks until no remote mutation is in flight. Intended for shutdown
// and tests.
func (c *SyncController) Wait() {
	c.wg.Wait()
}

// Close detaches the controller from its view: in-flight requests are
// ignored on completion and no further mutation is accepted.
func (c *SyncController) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}
