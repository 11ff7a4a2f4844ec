package catalog

import (
	"context"
	"sync"

	"gamedeals/internal/domain/entity"
)

type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	// StateFailed means the load produced no deals at all.
	StateFailed State = "failed"
)

// Snapshot is what a consumer renders at one moment.
type Snapshot struct {
	State State
	Query string
	// Total counts the fetched deals before filtering.
	Total int
	Deals []entity.RawDeal
}

// Session is one page load: a single fetch, the fetched set and the current
// filter query. A result that arrives after Close is discarded.
type Session struct {
	mu    sync.Mutex
	alive bool
	state State
	query string
	deals []entity.RawDeal

	cancel context.CancelFunc
	done   chan struct{}
}

func newSession() *Session {
	return &Session{
		alive:  true,
		state:  StateLoading,
		cancel: func() {},
		done:   make(chan struct{}),
	}
}

func (s *Session) start(ctx context.Context, load func(context.Context) []entity.RawDeal) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		defer close(s.done)
		defer cancel()

		s.apply(load(ctx))
	}()
}

func (s *Session) apply(deals []entity.RawDeal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.alive {
		return
	}

	if len(deals) == 0 {
		s.state = StateFailed

		return
	}

	s.state = StateLoaded
	s.deals = deals
}

// Wait blocks until the load has finished or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the session down and cancels an outstanding load. It is safe
// to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.alive = false
	s.mu.Unlock()

	s.cancel()
}

// Search replaces the filter query and returns the refiltered view.
func (s *Session) Search(query string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query

	return s.snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		State: s.state,
		Query: s.query,
		Total: len(s.deals),
		Deals: Filter(s.deals, s.query),
	}
}
