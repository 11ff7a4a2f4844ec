package catalog

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"gamedeals/internal/domain/entity"
)

// Filter keeps the deals whose title contains query, ignoring case. Order is
// preserved. An empty query returns deals as is.
func Filter(deals []entity.RawDeal, query string) []entity.RawDeal {
	if query == "" {
		return deals
	}

	fold := cases.Fold()
	needle := fold.String(query)

	return lo.Filter(deals, func(deal entity.RawDeal, _ int) bool {
		return strings.Contains(fold.String(deal.Title), needle)
	})
}
