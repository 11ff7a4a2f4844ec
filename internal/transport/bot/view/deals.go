package view

import (
	"fmt"
	"html"
	"strings"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/lox"
)

// Deals renders a session snapshot as a chat message in Telegram HTML.
// At most limit deals are listed.
func Deals(snapshot catalog.Snapshot, deals []entity.DealView, rateText string, limit int) string {
	switch {
	case snapshot.State == catalog.StateLoading:
		return DealsLoading
	case snapshot.State == catalog.StateFailed:
		return DealsFailed
	case len(deals) == 0:
		return fmt.Sprintf(DealsNoMatch, html.EscapeString(snapshot.Query))
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, DealsHeader, html.EscapeString(rateText))

	if snapshot.Query != "" {
		fmt.Fprintf(&sb, DealsFoundQuery, len(deals), snapshot.Total, html.EscapeString(snapshot.Query))
	} else {
		fmt.Fprintf(&sb, DealsFound, len(deals))
	}

	for i, deal := range lox.Take(deals, limit) {
		fmt.Fprintf(&sb, DealItemTemplate,
			i+1,
			html.EscapeString(deal.BuyURL),
			html.EscapeString(deal.Title),
			html.EscapeString(deal.Store),
			html.EscapeString(deal.SalePrice.Local),
			html.EscapeString(deal.NormalPrice.Local),
			deal.Savings,
		)
	}

	if rest := len(deals) - limit; limit > 0 && rest > 0 {
		fmt.Fprintf(&sb, DealsTruncated, rest)
	}

	return sb.String()
}

func Stores(stores []value.Store) string {
	var sb strings.Builder

	sb.WriteString(StoresHeader)

	for _, store := range stores {
		fmt.Fprintf(&sb, StoreItemTemplate, html.EscapeString(store.Label))
	}

	return sb.String()
}
