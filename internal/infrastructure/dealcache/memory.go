package dealcache

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"gamedeals/internal/domain/entity"
)

const dealsKey = "deals"

// MemoryStore keeps the last fetched deal set in process.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *MemoryStore) Get(context.Context) ([]entity.RawDeal, bool) {
	value, ok := s.cache.Get(dealsKey)
	if !ok {
		return nil, false
	}

	deals, ok := value.([]entity.RawDeal)
	if !ok {
		return nil, false
	}

	return slices.Clone(deals), true
}

func (s *MemoryStore) Set(_ context.Context, deals []entity.RawDeal) {
	s.cache.SetDefault(dealsKey, slices.Clone(deals))
}
