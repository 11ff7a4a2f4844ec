package catalog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/service/pricing"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/errcodes"
)

const redirectURL = "https://www.cheapshark.com/redirect?dealID="

func newViews() catalog.ViewBuilder {
	return catalog.NewViewBuilder(catalog.ViewConfig{
		Stores:      value.NewStoreDirectory(map[string]string{"1": "Steam", "7": "Epic Games"}),
		Market:      pricing.DefaultMarket,
		Rate:        decimal.NewFromInt(3790),
		CountryCode: "CO",
		RedirectURL: redirectURL,
	})
}

func TestViewBuilderView(t *testing.T) {
	rq := require.New(t)

	views := newViews()

	deal := entity.RawDeal{
		DealID:      "X8sebHhbc1Ga0dTkgg59WgyM506af9oNZZJLU9uSrX8%3D",
		Title:       "Hades",
		StoreID:     "1",
		Thumb:       "https://example.com/hades.jpg",
		SalePrice:   "10.00",
		NormalPrice: "20.00",
	}

	got := views.View(context.Background(), deal)

	rq.Equal(deal.DealID, got.ID)
	rq.Equal("Hades", got.Title)
	rq.Equal("Steam", got.Store)
	rq.Equal(deal.Thumb, got.Thumb)
	rq.Equal(50, got.Savings)
	rq.Equal("$10.00", got.SalePrice.USD)
	rq.Equal("37900", strings.Map(keepDigit, got.SalePrice.Local))
	rq.Equal("$20.00", got.NormalPrice.USD)
	rq.Equal(redirectURL+deal.DealID, got.BuyURL)
}

func TestViewBuilderStoreFallback(t *testing.T) {
	rq := require.New(t)

	got := newViews().View(context.Background(), entity.RawDeal{
		DealID: "a", StoreID: "99", SalePrice: "1", NormalPrice: "1",
	})

	rq.Equal(value.DefaultStoreLabel, got.Store)
	rq.Equal(0, got.Savings)
}

func TestViewBuilderMalformedPrice(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	got := newViews().View(ctx, entity.RawDeal{
		DealID: "a", StoreID: "1", SalePrice: "free", NormalPrice: "20",
	})

	rq.Equal(pricing.FallbackDisplay, got.SalePrice.Local)
	rq.Equal(pricing.FallbackDisplay, got.SalePrice.USD)
	rq.Equal("$20.00", got.NormalPrice.USD)
	rq.Equal(0, got.Savings)
	rq.Contains(buf.String(), `"level":"WARN"`)
	rq.Contains(buf.String(), "malformed deal price")
}

func TestViewBuilderForCountry(t *testing.T) {
	rq := require.New(t)

	views := newViews()
	other := views.ForCountry("us")

	rq.Equal("CO", views.CountryCode())
	rq.Equal("US", other.CountryCode())
	rq.Equal("CO", views.ForCountry("").CountryCode())

	got := other.View(context.Background(), entity.RawDeal{DealID: "a", SalePrice: "9.99", NormalPrice: "19.99"})

	rq.Equal("$9.99", got.SalePrice.Local)
	rq.Equal(got.SalePrice.USD, got.SalePrice.Local)
}

func TestViewBuilderRender(t *testing.T) {
	rq := require.New(t)

	input := deals("Hades", "DOOM Eternal")
	got := newViews().Render(context.Background(), input)

	rq.Len(got, 2)
	rq.Equal("Hades", got[0].Title)
	rq.Equal("DOOM Eternal", got[1].Title)
	rq.Empty(newViews().Render(context.Background(), nil))
}

func TestViewBuilderBuyURL(t *testing.T) {
	rq := require.New(t)

	views := newViews()

	got, err := views.BuyURL("abc%3D")
	rq.NoError(err)
	rq.Equal(redirectURL+"abc%3D", got)

	for _, id := range []string{"", "  "} {
		_, err := views.BuyURL(id)
		rq.Error(err)
		rq.True(failure.IsInvalidArgumentError(err))
		rq.Equal(errcodes.InvalidDealID, failure.Code(err))
	}
}

func TestViewBuilderRateText(t *testing.T) {
	rq := require.New(t)

	text := newViews().RateText()

	rq.True(strings.HasPrefix(text, "1 USD ≈ "))
	rq.Equal("13790", strings.Map(keepDigit, text))
}

func TestViewBuilderStores(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]value.Store{{ID: "1", Label: "Steam"}, {ID: "7", Label: "Epic Games"}}, newViews().Stores())
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}

	return -1
}
