package catalog

import (
	"context"
	"time"
)

// Session wires a criteria store, a debounced search input, and a querier
// into one catalog view session: input flows into the store (text through
// the debouncer), every criteria change re-dispatches a query, and only the
// newest response reaches onResult. The current state is always recoverable
// as a query string for shareable URLs.
type Session struct {
	Criteria *Store

	querier   *Querier
	debouncer *Debouncer
	unsub     func()
	cancel    context.CancelFunc
}

// NewSession starts a catalog session over src. onResult receives every
// non-stale query response. A non-positive quiet period uses the default.
func NewSession(src Source, quiet time.Duration, onResult func(*Result, error)) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		Criteria: NewStore(),
		querier:  NewQuerier(src),
		cancel:   cancel,
	}
	s.debouncer = NewDebouncer(quiet, s.Criteria.SetSearch)
	s.unsub = s.Criteria.Subscribe(func(c Criteria) {
		s.querier.Query(ctx, c, onResult)
	})
	return s
}

// SearchInput feeds one raw keystroke's worth of search text. The criteria
// store sees it only after the quiet period.
func (s *Session) SearchInput(text string) {
	s.debouncer.Input(text)
}

// URL returns the current criteria as a query string.
func (s *Session) URL() string {
	return EncodeCriteria(s.Criteria.Get())
}

// Restore rebuilds the view state from a query string (reload/bookmark).
func (s *Session) Restore(qs string) {
	s.Criteria.Restore(DecodeCriteria(qs))
}

// Close tears the session down: the debounce timer is cancelled and any
// in-flight query result is ignored on completion.
func (s *Session) Close() {
	s.debouncer.Stop()
	s.unsub()
	s.querier.Close()
	s.cancel()
}
