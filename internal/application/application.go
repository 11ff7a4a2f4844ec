package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"gamedeals/internal/config"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/service/pricing"
	"gamedeals/internal/domain/value"
	"gamedeals/internal/infrastructure/cheapshark"
	"gamedeals/internal/infrastructure/dealcache"
	"gamedeals/internal/server"
	"gamedeals/internal/transport/bot"
	"gamedeals/pkg/application/connectors"
	"gamedeals/pkg/application/modules"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/httpx"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/middlewarex"
	"gamedeals/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context, cfg config.Config) error {
	log := logger(ctx)

	// 1. Upstream client
	httpClient := &http.Client{
		Timeout: cfg.Upstream.Timeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.Upstream.LogFieldMaxLen),
		),
	}

	retriever, err := cheapshark.NewClient(cheapshark.Config{
		BaseURL:    cfg.Upstream.DealsURL,
		ProxyURL:   cfg.Upstream.ProxyURL,
		ProxyParam: cfg.Upstream.ProxyParam,
		StoreIDs:   cfg.Stores.IDs,
		UpperPrice: cfg.Upstream.UpperPrice,
		Metacritic: cfg.Upstream.Metacritic,
		PageSize:   cfg.Upstream.PageSize,
	}, httpClient)
	if err != nil {
		return fmt.Errorf("cheapshark.NewClient: %w", err)
	}

	log.Info("deal source configured", slog.String(logx.FieldURL, retriever.DealsURL()))

	// 2. Catalog
	views := catalog.NewViewBuilder(catalog.ViewConfig{
		Stores: value.NewStoreDirectory(cfg.Stores.Labels),
		Market: pricing.Market{
			Code:     cfg.Locale.MarketCode,
			Currency: cfg.Locale.Currency,
			Language: cfg.Locale.Language,
			Symbol:   cfg.Locale.Symbol,
		},
		Rate:        cfg.Locale.Rate,
		CountryCode: cfg.Locale.CountryCode,
		RedirectURL: cfg.Upstream.RedirectURL,
	})

	dealService := catalog.NewService(retriever, views)

	// 3. Cache
	redisConnector := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer redisConnector.Close(ctx)

	var checks []probe.ReadinessCheck

	if cfg.Cache.TTL > 0 {
		cache, cacheChecks := newDealCache(ctx, cfg, redisConnector)
		dealService.WithCache(cache)
		checks = append(checks, cacheChecks...)
	}

	// 4. HTTP API
	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.ResponseLogging,
		middlewarex.Recovery,
	)

	server.NewServer(
		server.NewDealServer(dealService, cfg.HTTP.SessionTimeout),
	).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	// 5. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.Address,
	}.Run(ctx, g, checks...)
	modules.MetricServer{ListenAddress: cfg.Metrics.Address}.Run(ctx, g)

	if cfg.Bot.Token != "" {
		chatBot, err := bot.New(bot.Config{
			Token:          cfg.Bot.Token,
			MaxDeals:       cfg.Bot.MaxDeals,
			SessionTimeout: cfg.HTTP.SessionTimeout,
		}, dealService)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		modules.Background{Name: "telegram-bot"}.Run(ctx, g, chatBot.Run)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newDealCache prefers Redis when an address is configured and falls back to
// the in-process store if it cannot be reached at startup.
func newDealCache(
	ctx context.Context,
	cfg config.Config,
	redisConnector *connectors.Redis,
) (catalog.Cache, []probe.ReadinessCheck) {
	if cfg.Redis.Address == "" {
		return dealcache.NewMemoryStore(cfg.Cache.TTL), nil
	}

	client, err := redisConnector.Client(ctx)
	if err != nil {
		logger(ctx).Warn("redis unavailable, using in-process cache", logx.Error(err))
		return dealcache.NewMemoryStore(cfg.Cache.TTL), nil
	}

	return dealcache.NewRedisStore(client, cfg.Cache.RedisKey, cfg.Cache.TTL), []probe.ReadinessCheck{redisConnector.Ping}
}
