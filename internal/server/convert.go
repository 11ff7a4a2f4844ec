package server

import (
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/lox"
	"gamedeals/pkg/rest"
)

func newRESTDeals(snapshot catalog.Snapshot, views []entity.DealView, country, rateText string) rest.Deals {
	return rest.Deals{
		State:    string(snapshot.State),
		Query:    snapshot.Query,
		Country:  country,
		RateText: rateText,
		Total:    snapshot.Total,
		Deals:    lox.Map(views, newRESTDeal),
	}
}

func newRESTDeal(view entity.DealView) rest.Deal {
	return rest.Deal{
		ID:          view.ID,
		Title:       view.Title,
		StoreID:     view.StoreID,
		Store:       view.Store,
		Thumb:       view.Thumb,
		SalePrice:   newRESTPrice(view.SalePrice),
		NormalPrice: newRESTPrice(view.NormalPrice),
		Savings:     view.Savings,
		BuyURL:      view.BuyURL,
	}
}

func newRESTPrice(price entity.DisplayPrice) rest.Price {
	return rest.Price{
		Local: price.Local,
		USD:   price.USD,
	}
}

func newRESTStore(store value.Store) rest.Store {
	return rest.Store{
		ID:    store.ID,
		Label: store.Label,
	}
}
