package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/errcodes"
)

// FallbackDisplay replaces an amount whose source string is not a decimal.
const FallbackDisplay = "N/A"

const nbsp = "\u00a0"

//nolint:gochecknoglobals
var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// Market is the one country whose visitors see prices in local currency.
type Market struct {
	Code     string
	Currency string
	Language language.Tag
	Symbol   string
}

//nolint:gochecknoglobals
var DefaultMarket = Market{
	Code:     "CO",
	Currency: "COP",
	Language: language.MustParse("es-CO"),
	Symbol:   "$",
}

type Formatter struct {
	market Market
}

func NewFormatter(market Market) Formatter {
	return Formatter{market: market}
}

func (f Formatter) Market() Market {
	return f.market
}

// FormatPrice renders price in USD and, for the local market, in whole units
// of local currency converted at rate.
func (f Formatter) FormatPrice(price, rate decimal.Decimal, countryCode string) entity.DisplayPrice {
	usd := FormatUSD(price)

	if countryCode != f.market.Code {
		return entity.DisplayPrice{Local: usd, USD: usd}
	}

	return entity.DisplayPrice{
		Local: f.FormatLocal(LocalAmount(price, rate)),
		USD:   usd,
	}
}

// FormatLocal renders whole local currency units, e.g. "$ 37.900" for es-CO.
func (f Formatter) FormatLocal(amount decimal.Decimal) string {
	sign, amount := splitSign(amount)
	p := message.NewPrinter(f.market.Language)

	return sign + f.market.Symbol + nbsp + p.Sprint(number.Decimal(amount.IntPart(), number.MaxFractionDigits(0)))
}

// RateText is the header line shown next to local prices.
func (f Formatter) RateText(rate decimal.Decimal) string {
	p := message.NewPrinter(f.market.Language)

	return fmt.Sprintf("1 USD ≈ %s %s",
		p.Sprint(number.Decimal(rate.InexactFloat64(), number.MaxFractionDigits(2))),
		f.market.Currency,
	)
}

// FormatUSD renders amount with the en-US convention and two fraction
// digits, e.g. "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	sign, amount := splitSign(amount.Round(2))
	p := message.NewPrinter(language.AmericanEnglish)

	return sign + "$" + p.Sprint(number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// LocalAmount converts price at rate and rounds to whole units.
func LocalAmount(price, rate decimal.Decimal) decimal.Decimal {
	return roundHalfUp(price.Mul(rate))
}

// Discount is round((1 - sale/normal) * 100). A non-positive normal price
// has no meaningful discount and yields 0.
func Discount(sale, normal decimal.Decimal) int {
	if normal.Sign() <= 0 {
		return 0
	}

	ratio := sale.Div(normal)

	return int(roundHalfUp(decimal.NewFromInt(1).Sub(ratio).Mul(hundred)).IntPart())
}

func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.WrapError(err, errcodes.NumericFormatFailure, fmt.Sprintf("price %q", raw))
	}

	return price, nil
}

// roundHalfUp rounds halves toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

func splitSign(d decimal.Decimal) (string, decimal.Decimal) {
	if d.IsNegative() {
		return "-", d.Neg()
	}

	return "", d
}
