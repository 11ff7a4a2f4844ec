package catalog

import (
	"context"
	"log/slog"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/pricing"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/lox"
)

type ViewConfig struct {
	Stores value.StoreDirectory
	Market pricing.Market
	Rate   decimal.Decimal
	// CountryCode is the visitor country used when none is requested.
	CountryCode string
	// RedirectURL is the purchase link prefix; the deal id is appended as is.
	RedirectURL string
}

// ViewBuilder turns raw deals into display models. It holds only immutable
// configuration and is safe to share.
type ViewBuilder struct {
	stores      value.StoreDirectory
	formatter   pricing.Formatter
	rate        decimal.Decimal
	countryCode string
	redirectURL string
}

func NewViewBuilder(cfg ViewConfig) ViewBuilder {
	return ViewBuilder{
		stores:      cfg.Stores,
		formatter:   pricing.NewFormatter(cfg.Market),
		rate:        cfg.Rate,
		countryCode: cfg.CountryCode,
		redirectURL: cfg.RedirectURL,
	}
}

// ForCountry returns a copy rendering prices for countryCode. An empty code
// keeps the configured one.
func (b ViewBuilder) ForCountry(countryCode string) ViewBuilder {
	if countryCode != "" {
		b.countryCode = strings.ToUpper(countryCode)
	}

	return b
}

func (b ViewBuilder) CountryCode() string {
	return b.countryCode
}

func (b ViewBuilder) RateText() string {
	return b.formatter.RateText(b.rate)
}

func (b ViewBuilder) Stores() []value.Store {
	return b.stores.Stores()
}

func (b ViewBuilder) Render(ctx context.Context, deals []entity.RawDeal) []entity.DealView {
	return lox.Map(deals, func(deal entity.RawDeal) entity.DealView {
		return b.View(ctx, deal)
	})
}

func (b ViewBuilder) View(ctx context.Context, deal entity.RawDeal) entity.DealView {
	sale, saleAmount, saleOK := b.price(ctx, deal.DealID, deal.SalePrice)
	normal, normalAmount, normalOK := b.price(ctx, deal.DealID, deal.NormalPrice)

	var savings int
	if saleOK && normalOK {
		savings = pricing.Discount(saleAmount, normalAmount)
	}

	buyURL, err := b.BuyURL(deal.DealID)
	if err != nil {
		logger(ctx).Warn("deal without id", slog.String(logx.FieldDealID, deal.DealID), logx.Error(err))
	}

	return entity.DealView{
		ID:          deal.DealID,
		Title:       deal.Title,
		StoreID:     deal.StoreID,
		Store:       b.stores.Label(deal.StoreID),
		Thumb:       deal.Thumb,
		SalePrice:   sale,
		NormalPrice: normal,
		Savings:     savings,
		BuyURL:      buyURL,
	}
}

// BuyURL builds the purchase redirect link. Upstream deal ids are already
// URL-encoded, so the id is appended without escaping.
func (b ViewBuilder) BuyURL(dealID string) (string, error) {
	if strings.TrimSpace(dealID) == "" {
		return "", failure.NewInvalidArgumentError(
			"empty deal id",
			failure.WithCode(errcodes.InvalidDealID),
			failure.WithDescription("deal id must not be empty"),
		)
	}

	return b.redirectURL + dealID, nil
}

func (b ViewBuilder) price(ctx context.Context, dealID, raw string) (entity.DisplayPrice, decimal.Decimal, bool) {
	amount, err := pricing.ParsePrice(raw)
	if err != nil {
		logger(ctx).Warn("malformed deal price", slog.String(logx.FieldDealID, dealID), logx.Error(err))

		return entity.DisplayPrice{Local: pricing.FallbackDisplay, USD: pricing.FallbackDisplay}, decimal.Zero, false
	}

	return b.formatter.FormatPrice(amount, b.rate, b.countryCode), amount, true
}
