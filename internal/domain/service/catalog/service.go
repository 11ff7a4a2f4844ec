package catalog

import (
	"context"
	"log/slog"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/logx"
)

type Retriever interface {
	FetchDeals(ctx context.Context) []entity.RawDeal
}

type RetrieverFunc func(ctx context.Context) []entity.RawDeal

func (f RetrieverFunc) FetchDeals(ctx context.Context) []entity.RawDeal {
	return f(ctx)
}

// Cache keeps the last successful fetch for a while. A miss and a broken
// backend look the same to the caller.
type Cache interface {
	Get(ctx context.Context) ([]entity.RawDeal, bool)
	Set(ctx context.Context, deals []entity.RawDeal)
}

type Service struct {
	retriever Retriever
	cache     Cache
	views     ViewBuilder
}

func NewService(retriever Retriever, views ViewBuilder) *Service {
	return &Service{
		retriever: retriever,
		views:     views,
	}
}

func (s *Service) WithCache(cache Cache) *Service {
	s.cache = cache
	return s
}

// Load returns the current deal set, from cache when possible. Only a
// non-empty fetch is cached so a failed load is retried next time.
func (s *Service) Load(ctx context.Context) []entity.RawDeal {
	if s.cache != nil {
		if deals, ok := s.cache.Get(ctx); ok {
			logger(ctx).Debug("deals loaded",
				slog.Bool(logx.FieldCacheHit, true),
				slog.Int(logx.FieldDealCount, len(deals)),
			)

			return deals
		}
	}

	deals := s.retriever.FetchDeals(ctx)

	logger(ctx).Info("deals loaded",
		slog.Bool(logx.FieldCacheHit, false),
		slog.Int(logx.FieldDealCount, len(deals)),
	)

	if s.cache != nil && len(deals) > 0 {
		s.cache.Set(ctx, deals)
	}

	return deals
}

// OpenSession starts a page load in the background. The caller must Close
// the session when its consumer goes away.
func (s *Service) OpenSession(ctx context.Context) *Session {
	session := newSession()
	session.start(ctx, s.Load)

	return session
}

func (s *Service) Views() ViewBuilder {
	return s.views
}

func (s *Service) Stores() []value.Store {
	return s.views.Stores()
}
