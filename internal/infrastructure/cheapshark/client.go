package cheapshark

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/logx"
)

const (
	StrategyDirect = "direct"
	StrategyProxy  = "proxy"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type Config struct {
	// BaseURL is the deals endpoint, e.g. https://www.cheapshark.com/api/1.0/deals.
	BaseURL string
	// ProxyURL is the relay endpoint receiving the encoded deals URL in ProxyParam.
	ProxyURL   string
	ProxyParam string

	StoreIDs   []string
	UpperPrice int
	Metacritic int
	PageSize   int
}

type strategy struct {
	name string
	url  string
}

// Client fetches the deal list, first directly and then through the relay
// proxy. It never returns an error; a total failure is an empty list.
type Client struct {
	httpClient *http.Client
	dealsURL   string
	strategies []strategy
}

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	dealsURL, err := buildDealsURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("buildDealsURL: %w", err)
	}

	strategies := []strategy{{name: StrategyDirect, url: dealsURL}}

	if cfg.ProxyURL != "" {
		proxyURL, err := buildProxyURL(cfg, dealsURL)
		if err != nil {
			return nil, fmt.Errorf("buildProxyURL: %w", err)
		}

		strategies = append(strategies, strategy{name: StrategyProxy, url: proxyURL})
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		dealsURL:   dealsURL,
		strategies: strategies,
	}, nil
}

func (c *Client) DealsURL() string {
	return c.dealsURL
}

// FetchDeals tries each strategy in order and returns the first decoded
// list. Cancelling ctx stops the sequence.
func (c *Client) FetchDeals(ctx context.Context) []entity.RawDeal {
	for _, s := range c.strategies {
		if ctx.Err() != nil {
			logger(ctx).Warn("deal fetch cancelled", slog.String(logx.FieldStrategy, s.name), logx.Error(ctx.Err()))
			return []entity.RawDeal{}
		}

		deals, err := c.attempt(ctx, s)
		if err == nil {
			logger(ctx).Debug("deals fetched",
				slog.String(logx.FieldStrategy, s.name),
				slog.Int(logx.FieldDealCount, len(deals)),
			)

			return deals
		}

		logger(ctx).Warn("deal fetch attempt failed", slog.String(logx.FieldStrategy, s.name), logx.Error(err))
	}

	logger(ctx).Error("deal fetch failed on every path")

	return []entity.RawDeal{}
}

func (c *Client) attempt(ctx context.Context, s strategy) (deals []entity.RawDeal, err error) {
	start := time.Now()

	defer func() {
		observeAttempt(s.name, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidURL, "http.NewRequestWithContext")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.NetworkFailure, "httpClient.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(errcodes.NetworkFailure, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(&deals); err != nil {
		return nil, domain.WrapError(err, errcodes.ParseFailure, "json.Decode")
	}

	if deals == nil {
		return nil, domain.NewError(errcodes.ParseFailure, "null deal list")
	}

	return deals, nil
}

func buildDealsURL(cfg Config) (string, error) {
	base, err := parseHTTPURL(cfg.BaseURL)
	if err != nil {
		return "", err
	}

	storeIDs := make([]string, 0, len(cfg.StoreIDs))
	for _, id := range cfg.StoreIDs {
		storeIDs = append(storeIDs, url.QueryEscape(strings.TrimSpace(id)))
	}

	// Commas in storeID stay literal, as the API documents them.
	base.RawQuery = fmt.Sprintf("storeID=%s&upperPrice=%d&metacritic=%d&pageSize=%d",
		strings.Join(storeIDs, ","),
		cfg.UpperPrice,
		cfg.Metacritic,
		cfg.PageSize,
	)

	return base.String(), nil
}

func buildProxyURL(cfg Config, dealsURL string) (string, error) {
	proxy, err := parseHTTPURL(cfg.ProxyURL)
	if err != nil {
		return "", err
	}

	param := cfg.ProxyParam
	if param == "" {
		param = "url"
	}

	query := proxy.Query()
	query.Set(param, dealsURL)
	proxy.RawQuery = query.Encode()

	return proxy.String(), nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidURL, "url.Parse")
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewError(errcodes.InvalidURL, fmt.Sprintf("not an http url: %q", raw))
	}

	return u, nil
}
