package config

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Locale describes the one market shown in local currency. The rate is read
// once at startup.
type Locale struct {
	Rate        decimal.Decimal `env:"EXCHANGE_RATE" envDefault:"3790"`
	MarketCode  string          `env:"MARKET_CODE" envDefault:"CO" validate:"iso3166_1_alpha2"`
	Currency    string          `env:"MARKET_CURRENCY" envDefault:"COP" validate:"iso4217"`
	Language    language.Tag    `env:"MARKET_LANGUAGE" envDefault:"es-CO"`
	Symbol      string          `env:"MARKET_CURRENCY_SYMBOL" envDefault:"$" validate:"required"`
	CountryCode string          `env:"VISITOR_COUNTRY" envDefault:"CO" validate:"iso3166_1_alpha2"`
}
